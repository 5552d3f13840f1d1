package domain

// Aggregate rows returned by browse listings: the entity plus the number of
// published videos filed under it.

type SourceCount struct {
	Source
	VideoAmount int
}

type SpeakerCount struct {
	Speaker
	VideoAmount int
}

type CategoryCount struct {
	Category
	VideoAmount int
}

type SubCategoryCount struct {
	SubCategory
	VideoAmount int
}

type PlaylistCount struct {
	Playlist
	VideoAmount int
}

// TagCount aggregates per slug: tag rows are video-scoped, so the browse
// view groups them by slug and counts distinct published videos.
type TagCount struct {
	Slug        string
	VideoAmount int
}

// UserCount backs the sponsors and creators listings.
type UserCount struct {
	User
	VideoAmount int
}
