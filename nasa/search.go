package nasa

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nasaimg/nasaimg/log"
)

// pager describes one paginated endpoint.
type pager struct {
	operation string
	path      string
	params    url.Values
	pageSize  int
	// shape adjusts each flattened item before it is kept.
	shape func(MediaItem)
}

// Search returns every item matching query, fetched 100 per page.
func (c *Client) Search(ctx context.Context, query SearchQuery) ([]MediaItem, error) {
	return c.paginate(ctx, pager{
		operation: "search",
		path:      "/search",
		params:    query.Values(),
		pageSize:  searchPageSize,
	})
}

// Album returns the contents of the named album, fetched 50 per page. The
// name is case-sensitive. Items never carry the album field.
func (c *Client) Album(ctx context.Context, name string) ([]MediaItem, error) {
	return c.paginate(ctx, pager{
		operation: "album",
		path:      "/album/" + url.PathEscape(name),
		params:    url.Values{},
		pageSize:  albumPageSize,
		shape: func(item MediaItem) {
			delete(item, fieldAlbum)
		},
	})
}

// paginate walks pages until one comes back short or maxPages is reached.
// An error on any page discards everything gathered so far.
func (c *Client) paginate(ctx context.Context, p pager) ([]MediaItem, error) {
	s := c.open()
	defer s.Close()

	p.params.Set("page_size", strconv.Itoa(p.pageSize))
	items := make([]MediaItem, 0)

	for page := 1; page <= maxPages; page++ {
		if err := c.pause(ctx); err != nil {
			return nil, err
		}

		p.params.Set("page", strconv.Itoa(page))

		var body collection[rawItem]
		if err := s.get(ctx, p.path, p.params, &body); err != nil {
			return nil, err
		}

		hits := body.Collection.Items
		for _, raw := range hits {
			item, err := raw.flatten()
			if err != nil {
				return nil, fmt.Errorf("%s page %d: %w", p.operation, page, err)
			}

			if p.shape != nil {
				p.shape(item)
			}

			items = append(items, item)
		}

		if c.progress != nil {
			c.progress(Progress{
				Operation: p.operation,
				Page:      page,
				Retrieved: len(items),
				TotalHits: body.Collection.Metadata.TotalHits,
			})
		}

		if len(hits) < p.pageSize {
			break
		}
	}

	log.Infof("%s %s: %d items", p.operation, p.path, len(items))
	return items, nil
}

// flatten returns the item's single data record with href injected.
func (r rawItem) flatten() (MediaItem, error) {
	if len(r.Data) != 1 {
		return nil, fmt.Errorf("item %s: expected one data record, got %d", r.Href, len(r.Data))
	}

	item := r.Data[0]
	if item == nil {
		item = MediaItem{}
	}
	item[fieldHref] = r.Href
	return item, nil
}
