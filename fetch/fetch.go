// seehuhn.de/go/iconfont - icon fonts for Go programs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package fetch downloads a resource over HTTP into memory.
//
// There is exactly one request per call.  Requests are not retried and no
// timeout is set beyond what the context and the client impose.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// StatusError is returned by [Get] when the server answers with a status
// code outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (err *StatusError) Error() string {
	status := err.Status
	if status == "" {
		status = http.StatusText(err.StatusCode)
	}
	return fmt.Sprintf("GET %s: unexpected status %q", err.URL, status)
}

// Get downloads the resource at url and returns the complete response body.
// If client is nil, [http.DefaultClient] is used.
func Get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	return body, nil
}
