package playlist

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

const (
	// Generator is written into the head of exported playlists.
	Generator = "video-player"
	// ContentType is the media type of WPL documents.
	ContentType = "application/vnd.ms-wpl"
)

// WPL structure based on Windows Media Player playlist format
type WPL struct {
	XMLName xml.Name `xml:"smil"`
	Head    WPLHead  `xml:"head"`
	Body    WPLBody  `xml:"body"`
}

type WPLHead struct {
	Meta  []WPLMeta `xml:"meta"`
	Title string    `xml:"title"`
}

type WPLMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type WPLBody struct {
	Seq WPLSeq `xml:"seq"`
}

type WPLSeq struct {
	Media []WPLMedia `xml:"media"`
}

type WPLMedia struct {
	Src   string `xml:"src,attr"`
	Title string `xml:"title,attr,omitempty"`
}

// Item is one entry of a playlist document.
type Item struct {
	// Src is the media reference. Video ids are used as-is.
	Src   string
	Title string
}

// EncodeWPL writes a WPL document titled title listing items in order.
func EncodeWPL(w io.Writer, title string, items []Item) error {
	doc := WPL{
		Head: WPLHead{
			Meta: []WPLMeta{
				{Name: "Generator", Content: Generator},
				{Name: "ItemCount", Content: strconv.Itoa(len(items))},
			},
			Title: title,
		},
	}
	doc.Body.Seq.Media = make([]WPLMedia, 0, len(items))
	for _, it := range items {
		doc.Body.Seq.Media = append(doc.Body.Seq.Media, WPLMedia{Src: it.Src, Title: it.Title})
	}

	if _, err := io.WriteString(w, "<?wpl version=\"1.0\"?>\n"); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding wpl: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// DecodeWPL reads a WPL document and returns its title and items.
func DecodeWPL(r io.Reader) (title string, items []Item, err error) {
	var doc WPL
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("decoding wpl: %w", err)
	}
	for _, m := range doc.Body.Seq.Media {
		items = append(items, Item{Src: m.Src, Title: m.Title})
	}
	return doc.Head.Title, items, nil
}
