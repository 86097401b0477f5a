// Niconico nvapi response types.
//
// Field sets mirror the payloads the fixture matrix actually records;
// json tags follow nvapi's camelCase wire names.

package niconico

// NicoUser represents a Niconico user profile.
type NicoUser struct {
	ID            int64     `json:"id"`
	Nickname      string    `json:"nickname"`
	Description   string    `json:"description"`
	RegisteredAt  string    `json:"registeredAt,omitempty"`
	Icons         UserIcons `json:"icons"`
	FollowerCount int       `json:"followerCount"`
	FolloweeCount int       `json:"followeeCount"`
}

// UserIcons holds user avatar URLs.
type UserIcons struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

// VideoItem represents a single video in list responses.
type VideoItem struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	RegisteredAt string         `json:"registeredAt"`
	Duration     int            `json:"duration"`
	Thumbnail    VideoThumbnail `json:"thumbnail"`
	Count        VideoCount     `json:"count"`
	Owner        VideoOwner     `json:"owner"`
}

// VideoThumbnail holds thumbnail URLs for a video.
type VideoThumbnail struct {
	URL        string `json:"url"`
	MiddleURL  string `json:"middleUrl"`
	LargeURL   string `json:"largeUrl"`
	ListingURL string `json:"listingUrl"`
}

// VideoCount holds view/comment/mylist/like counters for a video.
type VideoCount struct {
	View    int `json:"view"`
	Comment int `json:"comment"`
	Mylist  int `json:"mylist"`
	Like    int `json:"like"`
}

// VideoOwner identifies the uploader of a video.
type VideoOwner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

// OwnVideosData is the payload of the authenticated user's uploads listing.
type OwnVideosData struct {
	TotalCount int            `json:"totalCount"`
	Items      []OwnVideoItem `json:"items"`
}

// OwnVideoItem wraps a video with upload visibility info.
type OwnVideoItem struct {
	Essential VideoItem `json:"essential"`
	IsHidden  bool      `json:"isHidden"`
}

// UserVideosData is the payload of another user's uploads listing.
type UserVideosData struct {
	TotalCount int             `json:"totalCount"`
	Items      []UserVideoItem `json:"items"`
}

// UserVideoItem wraps a video in a user videos listing.
type UserVideoItem struct {
	Essential VideoItem `json:"essential"`
}

// MylistItem represents a mylist in listing responses.
type MylistItem struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	IsPublic    bool              `json:"isPublic"`
	ItemsCount  int               `json:"itemsCount"`
	CreatedAt   string            `json:"createdAt"`
	Owner       VideoOwner        `json:"owner"`
	SampleItems []MylistVideoItem `json:"sampleItems,omitempty"`
}

// Mylist represents a single mylist with its items.
type Mylist struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	IsPublic       bool              `json:"isPublic"`
	TotalItemCount int               `json:"totalItemCount"`
	Owner          VideoOwner        `json:"owner"`
	Items          []MylistVideoItem `json:"items"`
}

// MylistVideoItem is a video entry inside a mylist.
type MylistVideoItem struct {
	ItemID  int64     `json:"itemId"`
	AddedAt string    `json:"addedAt"`
	Video   VideoItem `json:"video"`
}

// FollowingMylistsData is the payload of the followed-mylists listing.
type FollowingMylistsData struct {
	FollowLimit int          `json:"followLimit"`
	Mylists     []MylistItem `json:"mylists"`
}

// SeriesItem represents a series in listing responses.
type SeriesItem struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	ItemsCount   int        `json:"itemsCount"`
	CreatedAt    string     `json:"createdAt"`
	Owner        VideoOwner `json:"owner"`
}

// SeriesData represents a single series with its items.
type SeriesData struct {
	Detail     SeriesItem        `json:"detail"`
	TotalCount int               `json:"totalCount"`
	Items      []SeriesVideoItem `json:"items"`
}

// SeriesVideoItem is a video entry inside a series.
type SeriesVideoItem struct {
	Meta  SeriesItemMeta `json:"meta"`
	Video VideoItem      `json:"video"`
}

// SeriesItemMeta carries series ordering info for an item.
type SeriesItemMeta struct {
	ID    int64 `json:"id"`
	Order int   `json:"order"`
}

// RelationshipUsersData is the payload of the followed-users listing.
type RelationshipUsersData struct {
	Summary RelationshipSummary `json:"summary"`
	Items   []NicoUser          `json:"items"`
}

// RelationshipSummary holds follow relationship counters.
type RelationshipSummary struct {
	Followees int  `json:"followees"`
	HasNext   bool `json:"hasNext"`
}

// VideoSearchData is the payload of a video search.
type VideoSearchData struct {
	SearchID   string      `json:"searchId"`
	TotalCount int         `json:"totalCount"`
	HasNext    bool        `json:"hasNext"`
	Keyword    string      `json:"keyword,omitempty"`
	Tag        string      `json:"tag,omitempty"`
	Items      []VideoItem `json:"items"`
}

// ListSearchData is the payload of a mylist/series search.
type ListSearchData struct {
	SearchID   string           `json:"searchId"`
	TotalCount int              `json:"totalCount"`
	HasNext    bool             `json:"hasNext"`
	Items      []ListSearchItem `json:"items"`
}

// ListSearchItem is a single list (mylist or series) search hit.
type ListSearchItem struct {
	Type         string     `json:"type"` // "mylist" or "series"
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	VideoCount   int        `json:"videoCount"`
	Owner        VideoOwner `json:"owner"`
}

// HistoryData is the payload of the watch-history listing.
type HistoryData struct {
	TotalCount int           `json:"totalCount"`
	Items      []HistoryItem `json:"items"`
}

// HistoryItem is a single watch-history entry.
type HistoryItem struct {
	WatchCount       int       `json:"watchCount"`
	LastViewedAt     string    `json:"lastViewedAt"`
	PlaybackPosition float64   `json:"playbackPosition"`
	Video            VideoItem `json:"video"`
}

// LikeHistoryData is the payload of the like-history listing.
type LikeHistoryData struct {
	TotalCount int               `json:"totalCount"`
	Items      []LikeHistoryItem `json:"items"`
}

// LikeHistoryItem is a single like-history entry.
type LikeHistoryItem struct {
	LikedAt string    `json:"likedAt"`
	Status  string    `json:"status"`
	Video   VideoItem `json:"video"`
}

// WatchData is the watch-page payload for a single video, including the
// stream media descriptors needed for the stream fixture.
type WatchData struct {
	Video  WatchVideo  `json:"video"`
	Media  WatchMedia  `json:"media"`
	Owner  VideoOwner  `json:"owner"`
	Client WatchClient `json:"client"`
}

// WatchVideo holds the video metadata section of watch data.
type WatchVideo struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Duration     int            `json:"duration"`
	RegisteredAt string         `json:"registeredAt"`
	Thumbnail    VideoThumbnail `json:"thumbnail"`
	Count        VideoCount     `json:"count"`
}

// WatchClient holds per-request tracking fields of watch data.
type WatchClient struct {
	Nicosid      string `json:"nicosid"`
	WatchID      string `json:"watchId"`
	WatchTrackID string `json:"watchTrackId"`
}

// WatchMedia holds stream delivery info.
type WatchMedia struct {
	Domand DomandMedia `json:"domand"`
}

// DomandMedia describes the DMS (domand) delivery media set.
type DomandMedia struct {
	Videos                []DomandVideo `json:"videos"`
	Audios                []DomandAudio `json:"audios"`
	IsStoryboardAvailable bool          `json:"isStoryboardAvailable"`
	AccessRightKey        string        `json:"accessRightKey"`
}

// DomandVideo is a selectable video quality.
type DomandVideo struct {
	ID           string `json:"id"`
	IsAvailable  bool   `json:"isAvailable"`
	Label        string `json:"label"`
	BitRate      int    `json:"bitRate"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	QualityLevel int    `json:"qualityLevel"`
}

// DomandAudio is a selectable audio quality.
type DomandAudio struct {
	ID           string `json:"id"`
	IsAvailable  bool   `json:"isAvailable"`
	BitRate      int    `json:"bitRate"`
	SamplingRate int    `json:"samplingRate"`
	QualityLevel int    `json:"qualityLevel"`
}

// StreamFixture pairs watch data with the audio track the provider would
// select for playback. Stored as the stream/stream_data fixture.
type StreamFixture struct {
	WatchData     WatchData   `json:"watch_data"`
	SelectedAudio DomandAudio `json:"selected_audio"`
}

// SelectBestAudio returns the available audio with the highest quality
// level, or nil when no audio is available.
func SelectBestAudio(audios []DomandAudio) *DomandAudio {
	var best *DomandAudio
	bestQuality := -1
	for i := range audios {
		if audios[i].IsAvailable && audios[i].QualityLevel > bestQuality {
			best = &audios[i]
			bestQuality = audios[i].QualityLevel
		}
	}
	return best
}
