package render

type Renderer interface {
	RenderResultList(view ResultListView) string
}

type ResultListView struct {
	Items []ResultListItem
	// Total is the size of the full result list; Items is the visible page.
	Total int
}

type ResultListItem struct {
	File      string
	ThumbFile string
	Tags      []string
}

func (v ResultListView) IsEmpty() bool {
	return len(v.Items) == 0
}

func (v ResultListView) Exhausted() bool {
	return len(v.Items) >= v.Total
}
