package models

// BookAuthor is the author or performer shape attached to audiobooks.
type BookAuthor struct {
	ID    string `json:"id"`
	Name  string `json:"rname,omitempty"`
	Image *Image `json:"image,omitempty"`
}

// SimpleBook is the brief audiobook shape returned by search.
type SimpleBook struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	AuthorNames []string     `json:"author_names,omitempty"`
	Authors     []BookAuthor `json:"book_authors,omitempty"`
	Image       *Image       `json:"image,omitempty"`
}
