package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/clozeiz/internal/quizgen"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Show how usable a text is for quiz generation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContent(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		cfg := quizgen.DefaultConfig()
		s := computeStats(content, cfg)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Fingerprint:        %s\n", s.fingerprint)
		fmt.Fprintf(out, "Characters:         %d\n", s.chars)
		fmt.Fprintf(out, "Sentences:          %d\n", s.sentences)
		fmt.Fprintf(out, "Blankable:          %d\n", s.blankable)
		fmt.Fprintf(out, "Distractor pool:    %d words\n", s.pool)
		if s.sentences < cfg.MinSentences {
			fmt.Fprintf(out, "\nNeeds at least %d sentences longer than %d characters.\n",
				cfg.MinSentences, cfg.MinSentenceLength)
		}
		return nil
	},
}

type textStats struct {
	fingerprint string
	chars       int
	sentences   int // usable sentences
	blankable   int // sentences with enough eligible tokens
	pool        int
}

func computeStats(content string, cfg quizgen.Config) textStats {
	sentences := quizgen.Segment(content, cfg.MinSentenceLength)
	s := textStats{
		fingerprint: quizgen.Fingerprint(content),
		chars:       len([]rune(content)),
		sentences:   len(sentences),
		pool:        len(quizgen.WordPool(content)),
	}
	for _, sentence := range sentences {
		if len(quizgen.EligibleTokens(sentence)) >= cfg.MinTokensPerSentence {
			s.blankable++
		}
	}
	return s
}
