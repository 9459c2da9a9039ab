package domain

import "time"

type Document struct {
	ID        string    `json:"id" yaml:"-"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Author    *string   `json:"author" yaml:"author"`
	Category  *string   `json:"category" yaml:"category"`
	Tags      []string  `json:"tags" yaml:"tags"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

// NewDocument carries the caller-supplied fields of a document before the
// store assigns its id and creation time.
type NewDocument struct {
	Title    string   `json:"title" yaml:"title"`
	Content  string   `json:"content" yaml:"content"`
	Author   *string  `json:"author,omitempty" yaml:"author"`
	Category *string  `json:"category,omitempty" yaml:"category"`
	Tags     []string `json:"tags,omitempty" yaml:"tags"`
}

// Normalized returns a copy with a non-nil tag slice.
func (n NewDocument) Normalized() NewDocument {
	out := n
	if out.Tags == nil {
		out.Tags = []string{}
	} else {
		out.Tags = append([]string(nil), n.Tags...)
	}
	return out
}

// Clone returns a deep copy so callers cannot mutate stored records.
func (d Document) Clone() Document {
	out := d
	out.Tags = append(make([]string, 0, len(d.Tags)), d.Tags...)
	if d.Author != nil {
		author := *d.Author
		out.Author = &author
	}
	if d.Category != nil {
		category := *d.Category
		out.Category = &category
	}
	return out
}

func StringPtr(v string) *string {
	return &v
}

func StringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
