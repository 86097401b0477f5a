package collector

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/fixtures"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/niconico"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
	"github.com/charmbracelet/log"
)

// Samples holds the test-account resource IDs each fixture call targets.
type Samples struct {
	UserID   string
	VideoID  string
	MylistID string
	SeriesID string
}

// SamplesFromConfig builds Samples from the niconico config section.
func SamplesFromConfig(cfg shared.NiconicoConfig) Samples {
	return Samples{
		UserID:   cfg.UserID,
		VideoID:  cfg.VideoID,
		MylistID: cfg.MylistID,
		SeriesID: cfg.SeriesID,
	}
}

// Collector fetches fixture data per category through a Processor.
type Collector struct {
	processor Processor
	client    *niconico.Client
	samples   Samples
	limit     int
	logger    *log.Logger
	notify    func(ProgressUpdate)
}

// NewCollector creates a Collector bound to one client and sample ID set.
func NewCollector(processor Processor, client *niconico.Client, samples Samples, limit int, logger *log.Logger) *Collector {
	if limit <= 0 {
		limit = 1
	}
	return &Collector{
		processor: processor,
		client:    client,
		samples:   samples,
		limit:     limit,
		logger:    logger,
		notify:    func(ProgressUpdate) {},
	}
}

// SetProgress installs a non-nil callback for category-level progress.
func (c *Collector) SetProgress(fn func(ProgressUpdate)) {
	if fn != nil {
		c.notify = fn
	}
}

// Collect runs collection for the given categories (nil for all).
//
// Individual fixture failures are logged by the processor and never stop
// the remaining calls; only context cancellation aborts the loop.
func (c *Collector) Collect(ctx context.Context, categories []fixtures.Category) error {
	if categories == nil {
		categories = fixtures.Categories()
	}

	c.logger.Info("starting fixture collection", "categories", len(categories))

	for i, category := range categories {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.logger.Info(fmt.Sprintf("=== Collecting %s fixtures ===", strings.ToUpper(string(category))))
		c.notify(collectCategoryUpdate(i+1, len(categories), category))

		switch category {
		case fixtures.CategoryTracks:
			c.collectTracks(ctx)
		case fixtures.CategoryPlaylists:
			c.collectPlaylists(ctx)
		case fixtures.CategoryAlbums:
			c.collectAlbums(ctx)
		case fixtures.CategoryArtists:
			c.collectArtists(ctx)
		case fixtures.CategorySearch:
			c.collectSearch(ctx)
		case fixtures.CategoryHistory:
			c.collectHistory(ctx)
		case fixtures.CategoryStream:
			c.collectStream(ctx)
		default:
			return fmt.Errorf("%w: %q", shared.ErrInvalidCategory, category)
		}
	}

	c.logger.Info("=== All fixtures collected ===")
	return nil
}

// collectTracks gathers the TRACKS category fixtures.
func (c *Collector) collectTracks(ctx context.Context) {
	// Own videos (used as library tracks in the provider)
	c.processor.Process(ctx, fixtures.CategoryTracks, "own_videos", func(ctx context.Context) (any, error) {
		return c.client.GetOwnVideos(ctx)
	})

	// Individual video retrieval (watch data - used as track details)
	c.processor.Process(ctx, fixtures.CategoryTracks, "watch_data", func(ctx context.Context) (any, error) {
		return c.client.GetWatchData(ctx, c.samples.VideoID)
	})

	// Specific user's uploaded videos (convert to Track objects)
	c.processor.Process(ctx, fixtures.CategoryTracks, "user_videos", func(ctx context.Context) (any, error) {
		return c.client.GetUserVideos(ctx, c.samples.UserID, 1, c.limit)
	})
}

// collectPlaylists gathers the PLAYLISTS category fixtures.
func (c *Collector) collectPlaylists(ctx context.Context) {
	// Own mylists (used as library playlists)
	c.processor.Process(ctx, fixtures.CategoryPlaylists, "own_mylists", func(ctx context.Context) (any, error) {
		return c.client.GetOwnMylists(ctx)
	})

	// Followed mylists
	c.processor.Process(ctx, fixtures.CategoryPlaylists, "following_mylists", func(ctx context.Context) (any, error) {
		return c.client.GetFollowingMylists(ctx)
	})

	// Individual mylist retrieval
	c.processor.Process(ctx, fixtures.CategoryPlaylists, "single_mylist_details", func(ctx context.Context) (any, error) {
		return c.client.GetMylist(ctx, c.samples.MylistID, 1, c.limit)
	})
}

// collectAlbums gathers the ALBUMS category fixtures.
func (c *Collector) collectAlbums(ctx context.Context) {
	// Own series (used as library albums)
	c.processor.Process(ctx, fixtures.CategoryAlbums, "own_series", func(ctx context.Context) (any, error) {
		return c.client.GetOwnSeries(ctx)
	})

	// Series created by a user (convert to Album objects)
	c.processor.Process(ctx, fixtures.CategoryAlbums, "user_series", func(ctx context.Context) (any, error) {
		return c.client.GetUserSeries(ctx, c.samples.UserID, 1, c.limit)
	})

	// Individual series retrieval
	c.processor.Process(ctx, fixtures.CategoryAlbums, "single_series_details", func(ctx context.Context) (any, error) {
		return c.client.GetSeries(ctx, c.samples.SeriesID, 1, c.limit)
	})
}

// collectArtists gathers the ARTISTS category fixtures.
func (c *Collector) collectArtists(ctx context.Context) {
	// Followed users (used as library artists)
	c.processor.Process(ctx, fixtures.CategoryArtists, "following_users", func(ctx context.Context) (any, error) {
		return c.client.GetFollowingUsers(ctx, c.limit)
	})

	// Test user profile
	c.processor.Process(ctx, fixtures.CategoryArtists, "user_details", func(ctx context.Context) (any, error) {
		return c.client.GetUser(ctx, c.samples.UserID)
	})
}

// collectSearch gathers the SEARCH category fixtures.
//
// Queries embed the sample IDs so that only content published by the
// dedicated test account matches, keeping results stable.
func (c *Collector) collectSearch(ctx context.Context) {
	opts := niconico.SearchOpts{SortKey: "registeredAt", SortOrder: "asc", PageSize: c.limit}
	listOpts := niconico.SearchOpts{SortKey: "startTime", SortOrder: "asc", PageSize: c.limit}

	c.processor.Process(ctx, fixtures.CategorySearch, "video_search_keyword", func(ctx context.Context) (any, error) {
		keyword := fmt.Sprintf("APIテスト%s-%s", c.samples.UserID, strings.TrimPrefix(c.samples.VideoID, "sm"))
		return c.client.SearchVideosByKeyword(ctx, keyword, opts)
	})

	c.processor.Process(ctx, fixtures.CategorySearch, "video_search_tags", func(ctx context.Context) (any, error) {
		tag := fmt.Sprintf("APIテストタグ%s-%s", c.samples.UserID, strings.TrimPrefix(c.samples.VideoID, "sm"))
		return c.client.SearchVideosByTag(ctx, tag, opts)
	})

	c.processor.Process(ctx, fixtures.CategorySearch, "mylist_search", func(ctx context.Context) (any, error) {
		query := fmt.Sprintf("テストマイリスト%s-%s", c.samples.UserID, c.samples.MylistID)
		return c.client.SearchLists(ctx, query, "mylist", listOpts)
	})

	c.processor.Process(ctx, fixtures.CategorySearch, "series_search", func(ctx context.Context) (any, error) {
		query := fmt.Sprintf("テストシリーズ%s-%s", c.samples.UserID, c.samples.SeriesID)
		return c.client.SearchLists(ctx, query, "series", listOpts)
	})
}

// collectHistory gathers the HISTORY category fixtures.
func (c *Collector) collectHistory(ctx context.Context) {
	c.processor.Process(ctx, fixtures.CategoryHistory, "user_history", func(ctx context.Context) (any, error) {
		return c.client.GetHistory(ctx, c.limit)
	})

	c.processor.Process(ctx, fixtures.CategoryHistory, "user_likes", func(ctx context.Context) (any, error) {
		return c.client.GetLikeHistory(ctx, c.limit)
	})
}

// collectStream gathers the STREAM category fixture.
//
// Fetches watch data, selects the best available audio the same way the
// provider does at playback time, and stores both as one document.
func (c *Collector) collectStream(ctx context.Context) {
	watchData, err := c.client.GetWatchData(ctx, c.samples.VideoID)
	if err != nil {
		c.logger.Error("failed to fetch watch data for stream fixture", "error", err)
		return
	}

	bestAudio := niconico.SelectBestAudio(watchData.Media.Domand.Audios)
	if bestAudio == nil {
		c.logger.Warn("no available audio found for stream fixture")
		return
	}

	streamFixture := niconico.StreamFixture{
		WatchData:     *watchData,
		SelectedAudio: *bestAudio,
	}

	c.processor.Process(ctx, fixtures.CategoryStream, "stream_data", func(ctx context.Context) (any, error) {
		return streamFixture, nil
	})
}
