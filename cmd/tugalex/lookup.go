package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tugalex-backend/internal/app"
	"github.com/heartmarshall/tugalex-backend/internal/domain"
	"github.com/heartmarshall/tugalex-backend/internal/service/lexicon"
)

type entryView struct {
	Word         string   `json:"word"                   yaml:"word"`
	PartOfSpeech string   `json:"partOfSpeech"           yaml:"part_of_speech"`
	Region       string   `json:"region"                 yaml:"region"`
	Syllables    []string `json:"syllables"              yaml:"syllables"`
	Phonemes     string   `json:"phonemes"               yaml:"phonemes"`
	ResolvedFrom string   `json:"resolvedFrom,omitempty" yaml:"resolved_from,omitempty"`
}

type textView struct {
	Region string `json:"region" yaml:"region"`
	Text   string `json:"text"   yaml:"text"`
}

type insightsView struct {
	Word          string   `json:"word"                 yaml:"word"`
	Region        string   `json:"region"               yaml:"region"`
	Homograph     bool     `json:"homograph"            yaml:"homograph"`
	ModernForm    string   `json:"modernForm,omitempty" yaml:"modern_form,omitempty"`
	Agreement     []string `json:"agreement,omitempty"  yaml:"agreement,omitempty"`
	SilentLetter  bool     `json:"silentLetter"         yaml:"silent_letter"`
	VoicedU       bool     `json:"voicedU"              yaml:"voiced_u"`
	PartsOfSpeech []string `json:"partsOfSpeech"        yaml:"parts_of_speech"`
}

type regionView struct {
	Code    string `json:"code"    yaml:"code"`
	ISO     string `json:"iso"     yaml:"iso"`
	Name    string `json:"name"    yaml:"name"`
	Variant string `json:"variant" yaml:"variant"`
}

type statsView struct {
	Rows          map[string]int `json:"rows"          yaml:"rows"`
	Words         map[string]int `json:"words"         yaml:"words"`
	OrthographyPT int            `json:"orthographyPT" yaml:"orthography_pt"`
	OrthographyBR int            `json:"orthographyBR" yaml:"orthography_br"`
	Archaisms     int            `json:"archaisms"     yaml:"archaisms"`
}

// withService opens the configured dataset for the duration of fn.
func (c *cli) withService(ctx context.Context, fn func(svc *lexicon.Service) error) error {
	ds, err := app.OpenDataset(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer ds.Close()
	return fn(lexicon.NewService(c.logger, ds.Store))
}

func getCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <word>",
		Short: "Look up the pronunciation and syllables of a word",
		Example: `  tugalex get acordo --region pt-PT --pos VERB
  tugalex get pharmacia --region pt-PT`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, _ := cmd.Flags().GetString("region")
			pos, _ := cmd.Flags().GetString("pos")

			return c.withService(cmd.Context(), func(svc *lexicon.Service) error {
				e, err := svc.Get(cmd.Context(), lexicon.LookupInput{Word: args[0], Region: region, PartOfSpeech: pos})
				if err != nil {
					return err
				}
				return c.render(cmd.OutOrStdout(), entryView{
					Word:         e.Word,
					PartOfSpeech: e.PartOfSpeech.String(),
					Region:       e.Region.ISO(),
					Syllables:    e.Syllables,
					Phonemes:     e.Phonemes,
					ResolvedFrom: e.ResolvedFrom,
				})
			})
		},
	}
	addRegionFlag(cmd)
	cmd.Flags().String("pos", "", "Part of speech (UD tag); empty picks the default entry")
	return cmd
}

func normalizeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Rewrite text into the post-1990 spelling",
		Long:  "Rewrite text into the post-1990 spelling of the region. Without arguments the text is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.rewrite(cmd, args, (*lexicon.Service).Normalize)
		},
	}
	addRegionFlag(cmd)
	return cmd
}

func reverseCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reverse [text...]",
		Short: "Rewrite text into the pre-1990 spelling",
		Long:  "Rewrite text into the pre-1990 spelling of the region. Without arguments the text is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.rewrite(cmd, args, (*lexicon.Service).Reverse)
		},
	}
	addRegionFlag(cmd)
	return cmd
}

func (c *cli) rewrite(
	cmd *cobra.Command,
	args []string,
	fn func(svc *lexicon.Service, ctx context.Context, text, region string) (string, error),
) error {
	region, _ := cmd.Flags().GetString("region")

	text := strings.Join(args, " ")
	if len(args) == 0 {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	}

	return c.withService(cmd.Context(), func(svc *lexicon.Service) error {
		out, err := fn(svc, cmd.Context(), text, region)
		if err != nil {
			return err
		}
		return c.render(cmd.OutOrStdout(), textView{Region: region, Text: out})
	})
}

func wordlistCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "List the distinct words of a region, sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			region, _ := cmd.Flags().GetString("region")
			return c.withService(cmd.Context(), func(svc *lexicon.Service) error {
				words, err := svc.Wordlist(cmd.Context(), region)
				if err != nil {
					return err
				}
				return c.render(cmd.OutOrStdout(), words)
			})
		},
	}
	addRegionFlag(cmd)
	return cmd
}

func ipaCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ipa",
		Short: "Export word to phonemes for a region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			region, _ := cmd.Flags().GetString("region")
			pos, _ := cmd.Flags().GetString("pos")
			return c.withService(cmd.Context(), func(svc *lexicon.Service) error {
				m, err := svc.IPAMap(cmd.Context(), region, pos)
				if err != nil {
					return err
				}
				return c.render(cmd.OutOrStdout(), m)
			})
		},
	}
	addRegionFlag(cmd)
	cmd.Flags().String("pos", "", "Only words having this part of speech; empty uses each word's default entry")
	return cmd
}

func insightsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights <word>",
		Short: "Show homograph, archaism, silent letter and voiced u facts for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, _ := cmd.Flags().GetString("region")
			return c.withService(cmd.Context(), func(svc *lexicon.Service) error {
				ins, err := svc.Insights(cmd.Context(), args[0], region)
				if err != nil {
					return err
				}
				pos := make([]string, 0, len(ins.PartsOfSpeech))
				for _, p := range ins.PartsOfSpeech {
					pos = append(pos, p.String())
				}
				return c.render(cmd.OutOrStdout(), insightsView{
					Word:          ins.Word,
					Region:        ins.Region.ISO(),
					Homograph:     ins.Homograph,
					ModernForm:    ins.ModernForm,
					Agreement:     ins.Agreement,
					SilentLetter:  ins.SilentLetter,
					VoicedU:       ins.VoicedU,
					PartsOfSpeech: pos,
				})
			})
		},
	}
	addRegionFlag(cmd)
	return cmd
}

func regionsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the supported regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := domain.DescribeRegions()
			out := make([]regionView, 0, len(infos))
			for _, ri := range infos {
				out = append(out, regionView{
					Code:    ri.Code.String(),
					ISO:     ri.ISO,
					Name:    ri.Name,
					Variant: ri.Variant.String(),
				})
			}
			return c.render(cmd.OutOrStdout(), out)
		},
	}
}

func statsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load every table and print its size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withService(cmd.Context(), func(svc *lexicon.Service) error {
				st, err := svc.Stats(cmd.Context())
				if err != nil {
					return err
				}
				view := statsView{
					Rows:          make(map[string]int, len(st.Rows)),
					Words:         make(map[string]int, len(st.Words)),
					OrthographyPT: st.OrthographyPT,
					OrthographyBR: st.OrthographyBR,
					Archaisms:     st.ArchaismsCount,
				}
				for r, n := range st.Rows {
					view.Rows[r.ISO()] = n
				}
				for r, n := range st.Words {
					view.Words[r.ISO()] = n
				}
				return c.render(cmd.OutOrStdout(), view)
			})
		},
	}
}

func addRegionFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("region", "r", "pt-PT", "Region: ISO code (pt-PT, pt-BR, pt-AO, pt-MZ, pt-TL) or internal code")
}
