package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/chatbot-b2b/internal/application/ports"
	"github.com/tu-usuario/chatbot-b2b/internal/domain"
)

// Verificar en tiempo de compilación que GeminiService implementa los puertos.
var _ ports.EmbeddingService = (*GeminiService)(nil)
var _ ports.ChatModelService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:%s?key=%s"

// GeminiService adaptador que implementa EmbeddingService y ChatModelService
// llamando a la API REST de Google Gemini. Usa únicamente net/http para no
// añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	chatModel  string
	embedModel string
	baseURL    string // sobreescribible en tests
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. chatModel suele ser
// "gemini-2.5-flash" y embedModel "text-embedding-004".
func NewGeminiService(apiKey, chatModel, embedModel string) *GeminiService {
	return &GeminiService{
		apiKey:     apiKey,
		chatModel:  chatModel,
		embedModel: embedModel,
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también puede acotar con ctx
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float32 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *geminiError `json:"error"`
}

type embedRequest struct {
	Model   string        `json:"model"`
	Content geminiContent `json:"content"`
}

type embedResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
	Error *geminiError `json:"error"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ── Implementación de los puertos ─────────────────────────────────────────────

// Embed genera el vector de un texto con el modelo de embeddings.
func (s *GeminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	payload := embedRequest{
		Model:   "models/" + s.embedModel,
		Content: geminiContent{Parts: []geminiPart{{Text: text}}},
	}

	var out embedResponse
	if err := s.call(ctx, s.embedModel, "embedContent", payload, &out, out.unwrapError); err != nil {
		return nil, err
	}
	if len(out.Embedding.Values) == 0 {
		return nil, fmt.Errorf("AI: embedding vacío: %w", domain.ErrUpstream)
	}
	return out.Embedding.Values, nil
}

// Generate produce la respuesta del asistente con el modelo de chat. El prompt
// completo concatena instrucciones de sistema, contexto de productos y mensaje.
func (s *GeminiService) Generate(ctx context.Context, systemPrompt, productContext, userMessage string) (string, error) {
	fullPrompt := fmt.Sprintf(`%s

CONTEXTO DE PRODUCTOS:
%s

PREGUNTA DEL USUARIO:
%s

INSTRUCCIONES:
- Responde de manera profesional y técnica
- Si recomiendas productos, menciona SKU, marca y características clave
- Si no hay productos relevantes en el contexto, indícalo claramente
- Mantén un tono B2B (mayorista)`, systemPrompt, productContext, userMessage)

	payload := generateRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: fullPrompt}}},
		},
		GenerationConfig: genConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	}

	var out generateResponse
	if err := s.call(ctx, s.chatModel, "generateContent", payload, &out, out.unwrapError); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía: %w", domain.ErrUpstream)
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía: %w", domain.ErrUpstream)
	}
	return text, nil
}

func (r *generateResponse) unwrapError() *geminiError { return r.Error }
func (r *embedResponse) unwrapError() *geminiError    { return r.Error }

// call ejecuta una llamada POST a la API de Gemini y deserializa la respuesta.
func (s *GeminiService) call(ctx context.Context, model, method string, payload, out any, apiErr func() *geminiError) error {
	if s.apiKey == "" {
		return fmt.Errorf("AI: GEMINI_API_KEY no configurado: %w", domain.ErrUpstream)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(s.baseURL, model, method, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("AI: llamada HTTP fallida (%w): %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if e := apiErr(); e != nil {
			return fmt.Errorf("AI: Gemini error %d: %s: %w", e.Code, e.Message, domain.ErrUpstream)
		}
		return fmt.Errorf("AI: Gemini HTTP %d: %w", resp.StatusCode, domain.ErrUpstream)
	}
	return nil
}
