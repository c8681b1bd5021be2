package domain

// Todo struct - Core domain entity
//
// ID is the caller-supplied partition key. It is immutable once the item
// exists: single-item operations address the key from the request path and
// never overwrite it from a body field.
type Todo struct {
	ID          string `json:"id" dynamodbav:"id"`
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
}
