package generator

import (
	"strings"

	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"google.golang.org/genai"
)

// 安全フィルター系の FinishReason。SDK のバージョン差を吸収するため文字列で持つ。
var safetyFinishReasons = map[string]bool{
	"SAFETY":                   true,
	"PROHIBITED_CONTENT":       true,
	"BLOCKLIST":                true,
	"SPII":                     true,
	"IMAGE_SAFETY":             true,
	"IMAGE_PROHIBITED_CONTENT": true,
	"IMAGE_RECITATION":         true,
	"RECITATION":               true,
}

// safetyReason はレスポンスに安全フィルターの明示的な理由があれば返す
func safetyReason(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	if pf := resp.PromptFeedback; pf != nil && pf.BlockReason != "" {
		if pf.BlockReasonMessage != "" {
			return string(pf.BlockReason) + " (" + pf.BlockReasonMessage + ")"
		}
		return string(pf.BlockReason)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		if fr := string(resp.Candidates[0].FinishReason); safetyFinishReasons[fr] {
			return fr
		}
	}
	return ""
}

// firstCandidateParts は最初の候補のパーツを返す。
func firstCandidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return nil
	}
	return c.Content.Parts
}

// emptyOrBlocked は結果が取り出せなかったときのエラーを作る
func emptyOrBlocked(resp *genai.GenerateContentResponse, kind domain.ResultKind) *domain.ClassifiedError {
	if reason := safetyReason(resp); reason != "" {
		return domain.NewSafetyBlockedError(reason)
	}
	return domain.NewEmptyResultError(kind)
}

// joinText は思考パーツを除いたテキストを連結する
func joinText(parts []*genai.Part) string {
	var sb strings.Builder
	for _, p := range parts {
		if p == nil || p.Thought || p.Text == "" {
			continue
		}
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}
