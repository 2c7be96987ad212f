package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/clozeiz/internal/quizfile"
	"github.com/abhisek/clozeiz/internal/quizgen"
	"github.com/abhisek/clozeiz/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a quiz from a text file or stdin",
	Long: `Generate a fill-in-the-blank quiz and print it.

Content is read from the file argument, or from stdin when no file (or "-")
is given. With --repeat, generation runs several times against the same
history so later runs avoid question slots already issued. --json and --out
export the last run in the quiz file format accepted by "play".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("json", false, "Write the quiz as JSON to stdout")
	generateCmd.Flags().String("out", "", "Write the quiz as JSON to this file")
	generateCmd.Flags().Uint64("seed", 0, "Seed the random source for reproducible quizzes")
	generateCmd.Flags().Int("repeat", 1, "Generate this many times from the same content")
	generateCmd.Flags().Bool("ask", false, "Ask each question interactively on stdin")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	outPath, _ := cmd.Flags().GetString("out")
	repeat, _ := cmd.Flags().GetInt("repeat")
	ask, _ := cmd.Flags().GetBool("ask")

	if repeat < 1 {
		return fmt.Errorf("--repeat must be at least 1, got %d", repeat)
	}
	fromStdin := len(args) == 0 || args[0] == "-"
	if ask && fromStdin {
		return errors.New("--ask reads answers from stdin, so content must come from a file")
	}
	if ask && asJSON {
		return errors.New("--ask and --json cannot be combined")
	}

	var opts []quizgen.Option
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		opts = append(opts, quizgen.WithRand(quizgen.NewRand(seed)))
	}
	d, err := loadDeps(cmd, false, opts...)
	if err != nil {
		return err
	}
	defer d.log.Sync()

	content, err := readContent(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if err := d.cfg.App.CheckContent(content); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}

	out := cmd.OutOrStdout()
	var questions []quizgen.Question
	for run := 1; run <= repeat; run++ {
		questions = d.gen.Generate(content)
		d.log.Info("generated quiz", "run", run, "questions", len(questions))
		if asJSON {
			continue
		}
		if repeat > 1 {
			lipgloss.Fprintln(out, theme.Title.Render(fmt.Sprintf("── Run %d/%d ──", run, repeat)))
		}
		if ask {
			if err := askQuestions(cmd.InOrStdin(), out, questions); err != nil {
				return err
			}
			continue
		}
		printQuestions(out, questions)
	}

	if asJSON || outPath != "" {
		f := quizfile.New(content, questions)
		if outPath != "" {
			if err := quizfile.Save(outPath, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved quiz %s to %s\n", f.ID, outPath)
		}
		if asJSON {
			return quizfile.Write(out, f)
		}
	}
	return nil
}

// readContent reads the file named in args, or r when args is empty or "-".
func readContent(r io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return string(b), nil
}

func printQuestions(w io.Writer, questions []quizgen.Question) {
	if len(questions) == 0 {
		lipgloss.Fprintln(w, theme.ErrorText.Render("No questions could be generated."))
		return
	}
	for i := range questions {
		printQuestion(w, &questions[i], len(questions))
		lipgloss.Fprintln(w, theme.Subtitle.Render("Answer: "+questions[i].Answer))
		fmt.Fprintln(w)
	}
}

func printQuestion(w io.Writer, q *quizgen.Question, total int) {
	lipgloss.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf("Question %d/%d", q.ID, total)))
	lipgloss.Fprintln(w, theme.Body.Render(q.Text))
	for j, opt := range q.Options {
		fmt.Fprintf(w, "  %d) %s\n", j+1, opt)
	}
}

// askQuestions quizzes the user on r, one line per answer.
func askQuestions(r io.Reader, w io.Writer, questions []quizgen.Question) error {
	if len(questions) == 0 {
		printQuestions(w, questions)
		return nil
	}

	scanner := bufio.NewScanner(r)
	correct := 0
	for i := range questions {
		q := &questions[i]
		printQuestion(w, q, len(questions))

		fmt.Fprint(w, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(w, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		switch {
		case answer == "":
			fmt.Fprintln(w, "(skipped)")
		case quizgen.CheckAnswer(answer, q):
			correct++
			lipgloss.Fprintln(w, theme.Correct.Render("✓ Correct!"))
		default:
			lipgloss.Fprintln(w, theme.Incorrect.Render("✗ Wrong.")+" Answer: "+q.Answer)
		}
		fmt.Fprintln(w)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	lipgloss.Fprintln(w, theme.Score.Render(fmt.Sprintf("Score: %d/%d", correct, len(questions))))
	return nil
}
