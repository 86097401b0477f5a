// User-scoped nvapi calls.

package niconico

import (
	"context"
	"fmt"
	"net/url"
)

// GetUser retrieves a user profile by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*NicoUser, error) {
	var data struct {
		User NicoUser `json:"user"`
	}

	endpoint := fmt.Sprintf("/v1/users/%s", url.PathEscape(userID))
	if err := c.doRequest(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	return &data.User, nil
}

// GetOwnVideos retrieves the authenticated user's uploaded videos.
func (c *Client) GetOwnVideos(ctx context.Context) (*OwnVideosData, error) {
	var data OwnVideosData
	if err := c.doRequest(ctx, "/v2/users/me/videos", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetUserVideos retrieves videos uploaded by the given user.
func (c *Client) GetUserVideos(ctx context.Context, userID string, page, pageSize int) (*UserVideosData, error) {
	var data UserVideosData

	endpoint := fmt.Sprintf("/v3/users/%s/videos?page=%d&pageSize=%d", url.PathEscape(userID), page, pageSize)
	if err := c.doRequest(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// GetOwnMylists retrieves the authenticated user's mylists.
func (c *Client) GetOwnMylists(ctx context.Context) ([]MylistItem, error) {
	var data struct {
		Mylists []MylistItem `json:"mylists"`
	}

	if err := c.doRequest(ctx, "/v1/users/me/mylists", &data); err != nil {
		return nil, err
	}

	return data.Mylists, nil
}

// GetFollowingMylists retrieves mylists the authenticated user follows.
func (c *Client) GetFollowingMylists(ctx context.Context) (*FollowingMylistsData, error) {
	var data FollowingMylistsData
	if err := c.doRequest(ctx, "/v1/users/me/following/mylists?sampleItemCount=3", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetOwnSeries retrieves the authenticated user's series.
func (c *Client) GetOwnSeries(ctx context.Context) ([]SeriesItem, error) {
	var data struct {
		Items []SeriesItem `json:"items"`
	}

	if err := c.doRequest(ctx, "/v1/users/me/series", &data); err != nil {
		return nil, err
	}

	return data.Items, nil
}

// GetUserSeries retrieves series created by the given user.
func (c *Client) GetUserSeries(ctx context.Context, userID string, page, pageSize int) ([]SeriesItem, error) {
	var data struct {
		Items []SeriesItem `json:"items"`
	}

	endpoint := fmt.Sprintf("/v1/users/%s/series?page=%d&pageSize=%d", url.PathEscape(userID), page, pageSize)
	if err := c.doRequest(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	return data.Items, nil
}

// GetFollowingUsers retrieves users the authenticated user follows.
func (c *Client) GetFollowingUsers(ctx context.Context, pageSize int) (*RelationshipUsersData, error) {
	var data RelationshipUsersData

	endpoint := fmt.Sprintf("/v1/users/me/following/users?pageSize=%d", pageSize)
	if err := c.doRequest(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	return &data, nil
}
