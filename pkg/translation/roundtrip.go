package translation

import (
	"context"
	"strings"

	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"go.uber.org/zap"
)

// TestRoundTrip 往返翻译并度量关键词保留率。
// 两次翻译顺序执行：第二次的输入依赖第一次的输出。
func (s *service) TestRoundTrip(ctx context.Context, content string, source, target format.Format) (*RoundTripResult, error) {
	if !source.Valid() {
		return nil, invalidFormatError(string(source))
	}
	if !target.Valid() {
		return nil, invalidFormatError(string(target))
	}

	outbound, err := s.Translate(ctx, content, source, target)
	if err != nil {
		return nil, err
	}

	inbound, err := s.Translate(ctx, outbound.Content, target, source)
	if err != nil {
		return nil, err
	}

	origTerms := ExtractKeyTerms(content)
	rtTerms := ExtractKeyTerms(inbound.Content)

	// 原文没有关键词时保留率空泛地取满分
	score := origTerms.Overlap(rtTerms)
	if score < 0 {
		score = 1.0
	}

	result := &RoundTripResult{
		OriginalContent:     content,
		IntermediateContent: outbound.Content,
		RoundTripContent:    inbound.Content,
		PreservationScore:   clamp01(score),
		Acceptable:          score >= s.config.PreservationThreshold,
		Differences:         []string{},
	}

	if lost := origTerms.Subtract(rtTerms); lost.Len() > 0 {
		result.Differences = append(result.Differences,
			"present in content, absent in round-trip: "+strings.Join(lost.Terms(), ", "))
	}
	if added := rtTerms.Subtract(origTerms); added.Len() > 0 {
		result.Differences = append(result.Differences,
			"absent in content, added in round-trip: "+strings.Join(added.Terms(), ", "))
	}

	s.logger.Debug("round-trip test completed",
		zap.String("source", source.String()),
		zap.String("target", target.String()),
		zap.Float64("preservation", result.PreservationScore),
		zap.Bool("acceptable", result.Acceptable))

	return result, nil
}
