// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fetch implements the text-by-location collaborator of the
// resolver: http(s) locations go over the network, anything else is
// read as a local file path.
package fetch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/pyconfig/internal/logger"
)

// Client fetches raw configuration text. It embeds *resty.Client to
// expose its full API while keeping a single construction point for
// application-wide HTTP settings.
type Client struct {
	*resty.Client

	log *logger.Logger
}

// New creates a Client with its own underlying resty.Client. A zero
// timeout leaves resty's default in place.
func New(log *logger.Logger, timeout time.Duration) *Client {
	httpClient := resty.New()
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}

	return &Client{Client: httpClient, log: log}
}

// Text returns the raw text behind location. One attempt, no retry;
// any failure propagates immediately.
func (c *Client) Text(ctx context.Context, location string) (string, error) {
	if isRemote(location) {
		return c.remoteText(ctx, location)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return "", fmt.Errorf("reading config file: %w", err)
	}

	return string(data), nil
}

func (c *Client) remoteText(ctx context.Context, location string) (string, error) {
	c.log.Debug().Str("location", location).Msg("fetching external config")

	resp, err := c.R().SetContext(ctx).Get(location)
	if err != nil {
		return "", fmt.Errorf("requesting config: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("requesting config: unexpected status %s", resp.Status())
	}

	return resp.String(), nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
