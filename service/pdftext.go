package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akhil-bm/legal-doc-analyzer/config"
)

// PDFTextService calls the external PDF-to-text extraction API.
// It satisfies analyzer.PDFTextExtractor; every failure it returns is a
// decode failure the normalizer treats as "no PDF text available".
type PDFTextService struct {
	config     *config.PDFTextConfig
	httpClient *http.Client
}

// pdfTextResponse is the extraction API response envelope
type pdfTextResponse struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Data    struct {
		Text  string `json:"text"`
		Pages int    `json:"pages"`
	} `json:"data"`
}

func NewPDFTextService(cfg *config.PDFTextConfig) *PDFTextService {
	return &PDFTextService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// ExtractText posts raw PDF bytes to the extraction service and returns
// the concatenated page text in page order
func (s *PDFTextService) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.APIURL+"/v1/extract", bytes.NewReader(pdf))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.config.APIToken)
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction API returned status %d", resp.StatusCode)
	}

	var result pdfTextResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w, body: %s", err, string(body))
	}

	if result.Code != 0 {
		return "", fmt.Errorf("extraction API error: %s", result.Message)
	}

	if strings.TrimSpace(result.Data.Text) == "" {
		return "", fmt.Errorf("extraction API returned no text")
	}

	return result.Data.Text, nil
}
