// Search calls.

package niconico

import (
	"context"
	"fmt"
	"net/url"
)

// SearchOpts controls sorting and page size for search calls.
type SearchOpts struct {
	SortKey   string // e.g. "registeredAt", "startTime"
	SortOrder string // "asc" or "desc"
	PageSize  int
}

func (o SearchOpts) query() url.Values {
	q := url.Values{}
	if o.SortKey != "" {
		q.Set("sortKey", o.SortKey)
	}
	if o.SortOrder != "" {
		q.Set("sortOrder", o.SortOrder)
	}
	if o.PageSize > 0 {
		q.Set("pageSize", fmt.Sprintf("%d", o.PageSize))
	}
	return q
}

// SearchVideosByKeyword searches videos matching a keyword.
func (c *Client) SearchVideosByKeyword(ctx context.Context, keyword string, opts SearchOpts) (*VideoSearchData, error) {
	q := opts.query()
	q.Set("keyword", keyword)

	var data VideoSearchData
	if err := c.doRequest(ctx, "/v2/search/video?"+q.Encode(), &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// SearchVideosByTag searches videos carrying an exact tag.
func (c *Client) SearchVideosByTag(ctx context.Context, tag string, opts SearchOpts) (*VideoSearchData, error) {
	q := opts.query()
	q.Set("tag", tag)

	var data VideoSearchData
	if err := c.doRequest(ctx, "/v2/search/video?"+q.Encode(), &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// SearchLists searches mylists or series by keyword.
//
// listType must be "mylist" or "series".
func (c *Client) SearchLists(ctx context.Context, keyword, listType string, opts SearchOpts) (*ListSearchData, error) {
	q := opts.query()
	q.Set("keyword", keyword)
	q.Set("types", listType)

	var data ListSearchData
	if err := c.doRequest(ctx, "/v1/search/list?"+q.Encode(), &data); err != nil {
		return nil, err
	}

	return &data, nil
}
