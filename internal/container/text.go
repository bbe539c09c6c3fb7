package container

import "strings"

// TextList joins items into a human-readable comma/and list, with an oxford
// comma for three or more items. Grounded on util.MakeTextList.
func TextList(items []string) string {
	if len(items) < 1 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}
	if len(items) == 2 {
		return items[0] + " and " + items[1]
	}

	cp := make([]string, len(items))
	copy(cp, items)
	cp[len(cp)-1] = "and " + cp[len(cp)-1]
	return strings.Join(cp, ", ")
}

// ArticleFor returns "a" or "an" depending on the leading sound of s. If
// capitalize is true, the article is capitalized.
func ArticleFor(s string, capitalize bool) string {
	article := "a"
	if len(s) > 0 && strings.ContainsRune("aeiouAEIOU", rune(s[0])) {
		article = "an"
	}
	if capitalize {
		return strings.ToUpper(article[:1]) + article[1:]
	}
	return article
}
