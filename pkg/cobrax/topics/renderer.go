package topics

// Renderer turns a topic's raw file content into terminal output. ext is
// the topic file's extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// RendererFunc adapts a plain function to Renderer
type RendererFunc func(content string, ext string) string

// Render calls f
func (f RendererFunc) Render(content string, ext string) string {
	return f(content, ext)
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string {
	return content
}
