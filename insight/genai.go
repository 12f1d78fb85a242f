package insight

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// DefaultModel is the generative model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Environment variables probed for the API credential, in order.
var keyEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

// KeyChooser is an optional interactive credential-selection hook that a
// hosting shell can expose. It is only consulted when no key is configured
// explicitly or in the environment.
type KeyChooser interface {
	// HasSelectedKey probes whether the hook can provide a key at all.
	HasSelectedKey() bool
	// OpenSelectKey runs the interactive selection and returns the key.
	OpenSelectKey() (string, error)
}

// Config configures a Service. The zero value reads the credential from the
// environment and uses DefaultModel.
type Config struct {
	APIKey  string     // explicit key, takes precedence over the environment
	Model   string     // model identifier, DefaultModel when empty
	Chooser KeyChooser // optional interactive fallback for the credential
}

// NewService creates a Service backed by the Gemini API.
//
// The credential is resolved before any client is built: an explicit key,
// then the environment, then the interactive chooser. Without a credential
// it fails with ErrCredentialMissing and performs no network activity.
func NewService(ctx context.Context, cfg Config) (*Service, error) {
	key, err := resolveKey(cfg)
	if err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Service{gen: &genaiGenerator{client: client, model: model}}, nil
}

// resolveKey finds the API credential: explicit config first, then the
// environment, then the interactive chooser.
func resolveKey(cfg Config) (string, error) {
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	for _, name := range keyEnvVars {
		if key := os.Getenv(name); key != "" {
			return key, nil
		}
	}
	if cfg.Chooser != nil && cfg.Chooser.HasSelectedKey() {
		key, err := cfg.Chooser.OpenSelectKey()
		if err != nil {
			return "", fmt.Errorf("credential selection failed: %w", err)
		}
		if key != "" {
			return key, nil
		}
	}
	return "", ErrCredentialMissing
}

// genaiGenerator performs the single GenerateContent call against Gemini.
type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
