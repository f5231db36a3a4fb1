package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render takes raw content and the topic file extension
	Render(content string, ext string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content string, ext string) string

// Render calls f
func (f RendererFunc) Render(content string, ext string) string {
	return f(content, ext)
}
