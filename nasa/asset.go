package nasa

import (
	"context"
	"net/url"
)

// Asset returns the file manifest of an asset.
func (c *Client) Asset(ctx context.Context, nasaID string) ([]ManifestEntry, error) {
	s := c.open()
	defer s.Close()

	var body collection[ManifestEntry]
	if err := s.get(ctx, "/asset/"+url.PathEscape(nasaID), nil, &body); err != nil {
		return nil, err
	}

	return body.Collection.Items, nil
}

// Metadata returns the location of an asset's metadata file.
func (c *Client) Metadata(ctx context.Context, nasaID string) (string, error) {
	return c.location(ctx, "/metadata/"+url.PathEscape(nasaID))
}

// Captions returns the location of a video asset's captions file.
func (c *Client) Captions(ctx context.Context, nasaID string) (string, error) {
	return c.location(ctx, "/captions/"+url.PathEscape(nasaID))
}

func (c *Client) location(ctx context.Context, path string) (string, error) {
	s := c.open()
	defer s.Close()

	var body location
	if err := s.get(ctx, path, nil, &body); err != nil {
		return "", err
	}

	return body.Location, nil
}
