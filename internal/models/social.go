package models

// ContentKind classifies an Instagram URL by its path shape
type ContentKind string

const (
	KindInvalid ContentKind = "Invalid"
	KindProfile ContentKind = "Profile"
	KindPost    ContentKind = "Post"
	KindReel    ContentKind = "Reel"
	KindStory   ContentKind = "Story"
)

type SocialPost struct {
	URL     string      `json:"url"`
	Title   string      `json:"title"`
	Snippet string      `json:"snippet"`
	Kind    ContentKind `json:"kind"`
	Source  string      `json:"source"`
}
