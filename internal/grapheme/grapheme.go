// Package grapheme segments text into the extended grapheme clusters the
// edit buffer stores as its characters.
package grapheme

import "github.com/rivo/uniseg"

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	return appendClusters(make([]string, 0, len(text)), text)
}

// Each calls fn for every grapheme cluster of text in order.
func Each(text string, fn func(cluster string)) {
	if text == "" {
		return
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		fn(g.Str())
	}
}

// ByteLen returns the total UTF-8 length of clusters.
func ByteLen(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += len(c)
	}
	return n
}

func appendClusters(dst []string, text string) []string {
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		dst = append(dst, cluster)
	}
	return dst
}
