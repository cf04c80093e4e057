package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

//go:embed demo.yaml
var demoBatch []byte

var errEmptyBatch = errors.New("batch contains no notifications")

// request is one entry of a batch file. Type and Channel are resolved
// leniently; see resolve.
type request struct {
	Type    string `yaml:"type"`
	Channel string `yaml:"channel"`
	To      string `yaml:"to" validate:"required"`
	Subject string `yaml:"subject" validate:"required"`
	Message string `yaml:"message"`
}

var validate = validator.New()

// parseBatch decodes a YAML list of requests.
func parseBatch(r io.Reader) ([]request, error) {
	var reqs []request
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&reqs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyBatch
		}
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	if len(reqs) == 0 {
		return nil, errEmptyBatch
	}
	for i, req := range reqs {
		if err := validate.Struct(req); err != nil {
			return nil, fmt.Errorf("batch entry %d: %w", i+1, err)
		}
	}
	return reqs, nil
}

// resolve maps the request's type and channel to a category and transport.
// Unknown values fall back to informative and email-exchange with a warning.
func resolve(ctx context.Context, log *slog.Logger, req request) (notifications.Category, notifications.Transport) {
	category, err := notifications.ParseCategory(req.Type)
	if err != nil {
		category = notifications.CategoryInformative
		log.WarnContext(ctx, "unknown notification type, using default",
			slog.String("type", req.Type),
			logger.Category(category.String()),
		)
	}

	transport, err := notifications.ParseTransport(req.Channel)
	if err != nil {
		transport = notifications.TransportExchange
		log.WarnContext(ctx, "unknown channel, using default",
			slog.String("requested_channel", req.Channel),
			logger.Channel(transport.String()),
		)
	}
	return category, transport
}
