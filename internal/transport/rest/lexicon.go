package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tugalex-backend/internal/dataset"
	"github.com/heartmarshall/tugalex-backend/internal/domain"
	"github.com/heartmarshall/tugalex-backend/internal/service/lexicon"
)

//go:generate moq -out lexicon_service_mock_test.go -rm . lexiconService

type lexiconService interface {
	Regions() []domain.RegionInfo
	Get(ctx context.Context, input lexicon.LookupInput) (domain.Entry, error)
	Insights(ctx context.Context, word, region string) (lexicon.Insights, error)
	Wordlist(ctx context.Context, region string) ([]string, error)
	IPAMap(ctx context.Context, region, pos string) (map[string]string, error)
	Normalize(ctx context.Context, text, region string) (string, error)
	Reverse(ctx context.Context, text, region string) (string, error)
	Stats(ctx context.Context) (dataset.Stats, error)
}

// maxTextBody bounds the JSON body of normalize/reverse requests.
const maxTextBody = 1 << 20

// LexiconHandler serves the lexicon REST endpoints.
type LexiconHandler struct {
	svc lexiconService
	log *slog.Logger
}

// NewLexiconHandler creates a LexiconHandler.
func NewLexiconHandler(svc lexiconService, logger *slog.Logger) *LexiconHandler {
	return &LexiconHandler{
		svc: svc,
		log: logger.With("handler", "lexicon"),
	}
}

type regionResponse struct {
	Code    string `json:"code"`
	ISO     string `json:"iso"`
	Name    string `json:"name"`
	Variant string `json:"variant"`
}

type entryResponse struct {
	Word         string   `json:"word"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Region       string   `json:"region"`
	Syllables    []string `json:"syllables"`
	Phonemes     string   `json:"phonemes"`
	ResolvedFrom string   `json:"resolvedFrom,omitempty"`
}

type insightsResponse struct {
	Word          string   `json:"word"`
	Region        string   `json:"region"`
	Homograph     bool     `json:"homograph"`
	ModernForm    string   `json:"modernForm,omitempty"`
	Agreement     []string `json:"agreement,omitempty"`
	SilentLetter  bool     `json:"silentLetter"`
	VoicedU       bool     `json:"voicedU"`
	PartsOfSpeech []string `json:"partsOfSpeech"`
}

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Region string `json:"region"`
	Text   string `json:"text"`
}

// Regions lists the supported regions.
// GET /v1/regions
func (h *LexiconHandler) Regions(w http.ResponseWriter, r *http.Request) {
	infos := h.svc.Regions()
	out := make([]regionResponse, 0, len(infos))
	for _, ri := range infos {
		out = append(out, regionResponse{
			Code:    ri.Code.String(),
			ISO:     ri.ISO,
			Name:    ri.Name,
			Variant: ri.Variant.String(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Entry returns one lexicon entry.
// GET /v1/regions/{region}/words/{word}?pos=VERB
func (h *LexiconHandler) Entry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.Context(), lexicon.LookupInput{
		Word:         r.PathValue("word"),
		Region:       r.PathValue("region"),
		PartOfSpeech: r.URL.Query().Get("pos"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Insights returns the derived facts about one word.
// GET /v1/regions/{region}/words/{word}/insights
func (h *LexiconHandler) Insights(w http.ResponseWriter, r *http.Request) {
	ins, err := h.svc.Insights(r.Context(), r.PathValue("word"), r.PathValue("region"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	pos := make([]string, 0, len(ins.PartsOfSpeech))
	for _, p := range ins.PartsOfSpeech {
		pos = append(pos, p.String())
	}
	writeJSON(w, http.StatusOK, insightsResponse{
		Word:          ins.Word,
		Region:        ins.Region.ISO(),
		Homograph:     ins.Homograph,
		ModernForm:    ins.ModernForm,
		Agreement:     ins.Agreement,
		SilentLetter:  ins.SilentLetter,
		VoicedU:       ins.VoicedU,
		PartsOfSpeech: pos,
	})
}

// Wordlist returns the sorted distinct words of a region.
// GET /v1/regions/{region}/wordlist
func (h *LexiconHandler) Wordlist(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.Wordlist(r.Context(), r.PathValue("region"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, words)
}

// IPAMap returns word → phonemes for a region.
// GET /v1/regions/{region}/ipa?pos=NOUN
func (h *LexiconHandler) IPAMap(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.IPAMap(r.Context(), r.PathValue("region"), r.URL.Query().Get("pos"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Normalize rewrites text into the post-agreement spelling.
// POST /v1/regions/{region}/normalize
func (h *LexiconHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	h.rewrite(w, r, h.svc.Normalize)
}

// Reverse rewrites text into the pre-agreement spelling.
// POST /v1/regions/{region}/reverse
func (h *LexiconHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	h.rewrite(w, r, h.svc.Reverse)
}

// Stats returns the loaded table sizes.
// GET /v1/stats
func (h *LexiconHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *LexiconHandler) rewrite(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, text, region string) (string, error),
) {
	var req textRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTextBody)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	region := r.PathValue("region")
	out, err := fn(r.Context(), req.Text, region)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Region: region, Text: out})
}

func toEntryResponse(e domain.Entry) entryResponse {
	syl := e.Syllables
	if syl == nil {
		syl = []string{}
	}
	return entryResponse{
		Word:         e.Word,
		PartOfSpeech: e.PartOfSpeech.String(),
		Region:       e.Region.ISO(),
		Syllables:    syl,
		Phonemes:     e.Phonemes,
		ResolvedFrom: e.ResolvedFrom,
	}
}
