package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"go.uber.org/zap"
)

// neutralEquivalence 原文没有关键词时等价度未定义，取中性基线
const neutralEquivalence = 0.5

// ValidateTranslation 评估译文是否保持原文语义。
// 首选语言模型评估；适配器失败或响应无法解析时回退到
// 关键词重合度的启发式评估，这对调用方不算错误。
func (s *service) ValidateTranslation(ctx context.Context, original, translated string, source, target format.Format) (*SemanticValidation, error) {
	if !source.Valid() {
		return nil, invalidFormatError(string(source))
	}
	if !target.Valid() {
		return nil, invalidFormatError(string(target))
	}

	if s.options.llmClient != nil {
		validation, err := s.adapter.Validate(ctx, original, translated, source, target)
		if err == nil {
			return s.finalizeValidation(validation), nil
		}

		s.logger.Warn("language model validation failed, falling back to heuristics",
			zap.Error(err))
	}

	return s.heuristicValidate(original, translated, target), nil
}

// finalizeValidation 裁剪等价度并应用达标判据。
// 判据是合取：等价度达标且无任何警告，二者缺一即判不等价。
func (s *service) finalizeValidation(v *SemanticValidation) *SemanticValidation {
	v.Equivalence = clamp01(v.Equivalence)
	if v.Warnings == nil {
		v.Warnings = []string{}
	}
	if v.Suggestions == nil {
		v.Suggestions = []string{}
	}
	v.IsValid = v.Equivalence >= s.config.EquivalenceThreshold && len(v.Warnings) == 0
	return v
}

// heuristicValidate 基于关键词重合度的语义评估
func (s *service) heuristicValidate(original, translated string, target format.Format) *SemanticValidation {
	origTerms := ExtractKeyTerms(original)
	transTerms := ExtractKeyTerms(translated)

	equivalence := origTerms.Overlap(transTerms)
	if equivalence < 0 {
		equivalence = neutralEquivalence
	}

	validation := &SemanticValidation{
		Equivalence: equivalence,
		Warnings:    []string{},
		Suggestions: []string{},
	}

	// 长度比超出区间说明信息量可能明显增减
	if len(original) > 0 {
		ratio := float64(len(translated)) / float64(len(original))
		if ratio < minLengthRatio || ratio > maxLengthRatio {
			validation.Warnings = append(validation.Warnings,
				fmt.Sprintf("translated length ratio %.2f is outside the expected range [%.1f, %.1f]", ratio, minLengthRatio, maxLengthRatio))
		}
	}

	// 等价度不达标时点名丢失的关键词
	missing := origTerms.Subtract(transTerms)
	if equivalence < s.config.EquivalenceThreshold && missing.Len() > 0 {
		validation.Warnings = append(validation.Warnings,
			"missing key terms: "+strings.Join(missing.Terms(), ", "))
	}

	if target == format.BehavioralScenario && !format.StartsWithGiven(translated) {
		validation.Suggestions = append(validation.Suggestions,
			"behavioral scenario should open with a Given step")
	}

	validation.Suggestions = append(validation.Suggestions,
		fuzzyTermSuggestions(missing, transTerms)...)

	return s.finalizeValidation(validation)
}

// fuzzyTermSuggestions 为丢失的关键词寻找译文中的近似拼写，
// 提示丢失可能只是词形变化而不是语义缺失
func fuzzyTermSuggestions(missing, translated KeyTermSet) []string {
	if missing.Len() == 0 || translated.Len() == 0 {
		return nil
	}

	candidates := translated.Terms()
	var suggestions []string

	for _, term := range missing.Terms() {
		ranks := fuzzy.RankFindNormalizedFold(term, candidates)
		if len(ranks) == 0 {
			continue
		}

		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance {
				best = r
			}
		}
		suggestions = append(suggestions,
			fmt.Sprintf("missing term %q may appear as %q in the translation", term, best.Target))
	}

	return suggestions
}
