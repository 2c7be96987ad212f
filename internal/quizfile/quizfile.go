// Package quizfile reads and writes generated quizzes as JSON documents.
// Documents are checked against an embedded JSON Schema and then against
// the quizgen validator chain before they are returned.
package quizfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/clozeiz/internal/quizgen"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://clozeiz/quiz.json"

// compiledSchema compiles the embedded schema once.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(schemaJSON, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// File is an exported quiz.
type File struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	Fingerprint string
	Questions   []quizgen.Question
}

// SchemaError reports a document that does not match the quiz schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("quiz file does not match schema: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

type fileJSON struct {
	ID          string         `json:"id"`
	CreatedAt   string         `json:"created_at"`
	Fingerprint string         `json:"fingerprint"`
	Questions   []questionJSON `json:"questions"`
}

type questionJSON struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
	Kind    string   `json:"kind"`
}

// New wraps questions generated from content in a File with a fresh id.
func New(content string, questions []quizgen.Question) *File {
	return &File{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		Fingerprint: quizgen.Fingerprint(content),
		Questions:   questions,
	}
}

// Write encodes f as indented JSON.
func Write(w io.Writer, f *File) error {
	doc := fileJSON{
		ID:          f.ID.String(),
		CreatedAt:   f.CreatedAt.Format(time.RFC3339),
		Fingerprint: f.Fingerprint,
		Questions:   make([]questionJSON, 0, len(f.Questions)),
	}
	for _, q := range f.Questions {
		doc.Questions = append(doc.Questions, questionJSON{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
			Answer:  q.Answer,
			Kind:    string(q.Kind),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode quiz file: %w", err)
	}
	return nil
}

// Read decodes and validates a quiz document. Every question must pass
// quizgen.DefaultValidators for optionCount.
func Read(r io.Reader, optionCount int) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &SchemaError{Err: err}
	}

	var doc fileJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode quiz file: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("quiz id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("quiz created_at: %w", err)
	}

	f := &File{
		ID:          id,
		CreatedAt:   createdAt,
		Fingerprint: doc.Fingerprint,
		Questions:   make([]quizgen.Question, 0, len(doc.Questions)),
	}
	validators := quizgen.DefaultValidators(optionCount)
	for _, qj := range doc.Questions {
		q := quizgen.Question{
			ID:      qj.ID,
			Text:    qj.Text,
			Options: qj.Options,
			Answer:  qj.Answer,
			Kind:    quizgen.Kind(qj.Kind),
		}
		if err := quizgen.Validate(&q, validators...); err != nil {
			return nil, err
		}
		f.Questions = append(f.Questions, q)
	}
	return f, nil
}

// Save writes f to path.
func Save(path string, f *File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Load reads and validates the quiz at path.
func Load(path string, optionCount int) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()
	return Read(in, optionCount)
}
