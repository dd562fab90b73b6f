package translation

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// KeyTermSet 从文本提取的显著词集合，仅用于比较，不做持久化
type KeyTermSet map[string]struct{}

// stopwords 不参与比较的常见词
var stopwords = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "from": {}, "have": {}, "been": {},
	"were": {}, "will": {}, "would": {}, "should": {}, "could": {}, "they": {},
	"them": {}, "their": {}, "there": {}, "then": {}, "than": {}, "when": {},
	"what": {}, "which": {}, "while": {}, "where": {}, "into": {}, "onto": {},
	"upon": {}, "given": {}, "also": {}, "some": {}, "such": {}, "each": {},
	"must": {}, "does": {}, "doing": {}, "done": {}, "being": {}, "after": {},
	"before": {}, "about": {}, "above": {}, "below": {}, "over": {}, "under": {},
	"only": {}, "very": {}, "just": {}, "func": {}, "test": {}, "assert": {},
	"expect": {}, "true": {}, "false": {},
}

// minTermLength 关键词最小长度，更短的词信号量不足
const minTermLength = 4

// termNormalizer 大小写折叠并去掉变音符号
var termNormalizer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

var termCaser = cases.Lower(language.Und)

// ExtractKeyTerms 将文本归一化为关键词集合：
// 小写、去变音符号、长度大于 3、剔除停用词。
func ExtractKeyTerms(text string) KeyTermSet {
	set := make(KeyTermSet)

	normalized, _, err := transform.String(termNormalizer, text)
	if err != nil {
		normalized = text
	}
	normalized = termCaser.String(normalized)

	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, word := range words {
		if len([]rune(word)) < minTermLength {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		set[word] = struct{}{}
	}

	return set
}

// Contains 检查集合是否包含某词
func (s KeyTermSet) Contains(term string) bool {
	_, ok := s[term]
	return ok
}

// Len 集合大小
func (s KeyTermSet) Len() int {
	return len(s)
}

// Terms 返回排序后的词列表
func (s KeyTermSet) Terms() []string {
	terms := make([]string, 0, len(s))
	for term := range s {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Intersect 返回与另一个集合的交集
func (s KeyTermSet) Intersect(other KeyTermSet) KeyTermSet {
	result := make(KeyTermSet)
	for term := range s {
		if other.Contains(term) {
			result[term] = struct{}{}
		}
	}
	return result
}

// Subtract 返回在本集合而不在另一个集合中的词
func (s KeyTermSet) Subtract(other KeyTermSet) KeyTermSet {
	result := make(KeyTermSet)
	for term := range s {
		if !other.Contains(term) {
			result[term] = struct{}{}
		}
	}
	return result
}

// Overlap 返回 |s ∩ other| / |s|，s 为空时返回负数表示未定义
func (s KeyTermSet) Overlap(other KeyTermSet) float64 {
	if len(s) == 0 {
		return -1
	}
	return float64(s.Intersect(other).Len()) / float64(s.Len())
}
