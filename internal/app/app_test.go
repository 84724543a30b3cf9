package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tugalex-backend/internal/config"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"regional_dict.csv": "id,word,pos,frequency,phonemes,syllables,region\n" +
			"1,acordo,NOUN,10,ɐ|ˈkoɾ|du,a cor do,lbx\n" +
			"2,acordo,VERB,4,ɐ|ˈkɔɾ|du,a cor do,lbx\n" +
			"3,ação,NOUN,7,a|ˈsɐ̃w̃,a ção,lbx\n",
		"acordo_ortografico_pt_PT.csv": "acção,ação\n",
		"acordo_ortografico_pt_BR.csv": "freqüente,frequente\n",
	}
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
	}
	return dir
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second},
		Dataset: config.DatasetConfig{
			Source:            config.SourceCSV,
			Dir:               dir,
			LexiconFile:       "regional_dict.csv",
			OrthographyPTFile: "acordo_ortografico_pt_PT.csv",
			OrthographyBRFile: "acordo_ortografico_pt_BR.csv",
			HomographsFile:    "heterophonic_homographs.csv",
			ArchaismsFile:     "archaisms.csv",
		},
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS"},
		RateLimit: config.RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 100,
			CleanupInterval:   time.Minute,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenDataset_UnknownSource(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t.TempDir())
	cfg.Dataset.Source = "redis"

	_, err := OpenDataset(context.Background(), cfg, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestNewServer_ServesCSVDataset(t *testing.T) {
	t.Parallel()

	cfg := testConfig(writeDataset(t))
	ds, err := OpenDataset(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer ds.Close()
	require.Nil(t, ds.Pool)

	srv, stop := newServer(cfg, discardLogger(), ds)
	defer stop()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/regions/pt-PT/words/acordo?pos=VERB", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entry))
	assert.Equal(t, "ɐ·ˈkɔɾ·du", entry["phonemes"])

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/regions/pt-PT/normalize", strings.NewReader(`{"text":"Acção!"}`))
	srv.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ação!")

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dataset"`)
}

func TestNewServer_ReadyFailsWithoutFiles(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t.TempDir())
	ds, err := OpenDataset(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	srv, stop := newServer(cfg, discardLogger(), ds)
	defer stop()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/regions/pt-PT/words/acordo", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewServer_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig(writeDataset(t))
	cfg.RateLimit = config.RateLimitConfig{Enabled: false}
	ds, err := OpenDataset(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	srv, stop := newServer(cfg, discardLogger(), ds)
	defer stop()

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/regions", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
