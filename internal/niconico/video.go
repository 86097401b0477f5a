// Video, mylist, series, history, and watch calls.

package niconico

import (
	"context"
	"fmt"
	"net/url"
)

// GetWatchData retrieves the watch page data for a video, including the
// media descriptors used for stream selection.
func (c *Client) GetWatchData(ctx context.Context, videoID string) (*WatchData, error) {
	var data struct {
		Response WatchData `json:"response"`
	}

	endpoint := fmt.Sprintf("/v1/watch/%s?withMedia=true", url.PathEscape(videoID))
	if err := c.doRequest(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	return &data.Response, nil
}

// GetMylist retrieves a mylist with one page of its items.
func (c *Client) GetMylist(ctx context.Context, mylistID string, page, pageSize int) (*Mylist, error) {
	var data struct {
		Mylist Mylist `json:"mylist"`
	}

	endpoint := fmt.Sprintf("/v2/mylists/%s?page=%d&pageSize=%d", url.PathEscape(mylistID), page, pageSize)
	if err := c.doRequest(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	return &data.Mylist, nil
}

// GetSeries retrieves a series with one page of its items.
func (c *Client) GetSeries(ctx context.Context, seriesID string, page, pageSize int) (*SeriesData, error) {
	var data SeriesData

	endpoint := fmt.Sprintf("/v2/series/%s?page=%d&pageSize=%d", url.PathEscape(seriesID), page, pageSize)
	if err := c.doRequest(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// GetHistory retrieves the authenticated user's watch history.
func (c *Client) GetHistory(ctx context.Context, pageSize int) (*HistoryData, error) {
	var data HistoryData

	endpoint := fmt.Sprintf("/v1/users/me/watch/history?page=1&pageSize=%d", pageSize)
	if err := c.doRequest(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// GetLikeHistory retrieves the authenticated user's like history.
func (c *Client) GetLikeHistory(ctx context.Context, pageSize int) (*LikeHistoryData, error) {
	var data LikeHistoryData

	endpoint := fmt.Sprintf("/v1/users/me/likes?pageSize=%d", pageSize)
	if err := c.doRequest(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	return &data, nil
}
