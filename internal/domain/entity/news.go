// Package entity contains the core business objects of the project.
package entity

// NewsPost is one dated announcement on the news page.
type NewsPost struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
}
