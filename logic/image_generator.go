package logic

import (
	"bluebot/dto"
	"bluebot/shared"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_image_generator.go -package mocks bluebot/logic IImageGenerator

const serviceImages = "huggingface"

// IImageGenerator turns a prompt into raw image bytes and their MIME type.
type IImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, string, error)
}

type imageGenerator struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	client    http.Client
}

func NewImageGenerator(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IImageGenerator {
	res := imageGenerator{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
	}
	// Diffusion models are slow; give them several times the usual budget
	res.client.Timeout = 4 * time.Second * time.Duration(cfg.HttpTimeoutSec)
	return &res
}

func (ig *imageGenerator) Generate(ctx context.Context, prompt string) ([]byte, string, error) {
	if ig.cfg.Secrets.HuggingFaceToken == "" {
		return nil, "", errors.New("HUGGINGFACE_TOKEN is not set")
	}

	obs := ig.metrics.StartUpstreamRequest(serviceImages)
	defer obs.Finish()

	bodyJson, err := json.Marshal(&dto.ImageInferenceRequest{Inputs: prompt})
	if err != nil {
		return nil, "", err
	}
	reqUrl := strings.TrimRight(ig.cfg.Image.InferenceUrl, "/") + "/" + ig.cfg.Image.Model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqUrl, bytes.NewReader(bodyJson))
	if err != nil {
		return nil, "", err
	}
	ig.userAgent.AddUserAgent(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/png")
	req.Header.Set("Authorization", "Bearer "+ig.cfg.Secrets.HuggingFaceToken)

	resp, err := ig.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", &UpstreamError{Service: serviceImages, Status: resp.StatusCode, Body: string(data)}
	}

	mimeType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", &UpstreamError{Service: serviceImages, Status: resp.StatusCode, Body: "response is not an image"}
	}
	ig.logger.Infof("Generated image: %.2f KB %s", float64(len(data))/1024, mimeType)
	return data, mimeType, nil
}
