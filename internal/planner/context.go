package planner

import (
	"sort"
	"strconv"
	"strings"
)

// 信号包中识别的键
const (
	SignalContext       = "context"
	SignalInstitution   = "institution_type"
	SignalLearningStyle = "learning_style"
	SignalComplexity    = "complexity"
	SignalDeliveryMode  = "delivery_mode"
	SignalGroupSize     = "group_size"
)

var primaryContexts = map[string]bool{
	ContextK12:          true,
	ContextUniversity:   true,
	ContextProfessional: true,
	ContextVocational:   true,
}

var learningStyles = map[string]bool{
	StyleVisual:      true,
	StyleAuditory:    true,
	StyleKinesthetic: true,
	StyleReading:     true,
	StyleMixed:       true,
}

// 机构类型 -> 主场景的结构推断
var institutionContexts = map[string]string{
	"school":          ContextK12,
	"university":      ContextUniversity,
	"college":         ContextUniversity,
	"workplace":       ContextProfessional,
	"company":         ContextProfessional,
	"training_center": ContextVocational,
}

// 教育阶段 -> 主场景的画像映射
var educationContexts = map[string]string{
	"primary":       ContextK12,
	"secondary":     ContextK12,
	"high_school":   ContextK12,
	"undergraduate": ContextUniversity,
	"graduate":      ContextUniversity,
	"professional":  ContextProfessional,
	"vocational":    ContextVocational,
}

// 各无障碍需求的辅助技术与教学调整，按需求取并集去重
var assistiveTechnologies = map[string][]string{
	NeedVisual:    {"screen_reader", "magnification", "high_contrast_display"},
	NeedHearing:   {"captioning_display", "hearing_aid_compatibility", "visual_alert_system"},
	NeedMotor:     {"switch_access", "voice_control", "eye_tracking"},
	NeedCognitive: {"text_to_speech", "simplified_interface", "screen_reader"},
}

var accommodations = map[string][]string{
	NeedVisual:    {"audio_descriptions", "large_print", "braille_materials"},
	NeedHearing:   {"captions", "transcripts", "sign_language_support"},
	NeedMotor:     {"extended_time", "alternative_input"},
	NeedCognitive: {"chunked_content", "extra_practice", "extended_time"},
}

// AnalyzeContext 由请求信号与学习者画像推导教育上下文。
// 全函数：每个子推导都有显式默认值，从不失败。nil 画像按空画像处理。
func AnalyzeContext(signals map[string]string, profile *LearnerProfile) EducationalContext {
	if profile == nil {
		profile = &LearnerProfile{}
	}
	if signals == nil {
		signals = map[string]string{}
	}

	return EducationalContext{
		PrimaryContext:      resolvePrimaryContext(signals, profile),
		SecondaryContexts:   deriveSecondaryContexts(signals, profile),
		LearningStyle:       resolveLearningStyle(signals, profile),
		CognitiveLoad:       assessCognitiveLoad(signals, profile),
		AccessibilityNeeds:  assessAccessibilityNeeds(profile),
		SocialContext:       defaultString(profile.SocialPreference, "mixed"),
		TechnologyLevel:     defaultString(profile.TechnologyAccess, "standard"),
		LanguagePreferences: languagePreferences(profile),
		CulturalContext:     defaultString(profile.CulturalBackground, "general"),
	}
}

// resolvePrimaryContext 按约定优先级解析：显式信号 > 结构推断 > 画像映射 > 默认。
// 分支顺序即契约，调整会改变歧义输入的结果。
func resolvePrimaryContext(signals map[string]string, profile *LearnerProfile) string {
	if v := strings.ToLower(signals[SignalContext]); primaryContexts[v] {
		return v
	}
	if v, ok := institutionContexts[strings.ToLower(signals[SignalInstitution])]; ok {
		return v
	}
	if v, ok := educationContexts[strings.ToLower(profile.EducationLevel)]; ok {
		return v
	}
	return ContextK12
}

// deriveSecondaryContexts 独立推导各次要场景，互不排斥，结果去重且只含闭合词表值。
func deriveSecondaryContexts(signals map[string]string, profile *LearnerProfile) []string {
	out := make([]string, 0, 3)

	if len(filterKnownNeeds(profile.AccessibilityNeeds)) > 0 {
		out = append(out, ContextSpecialNeeds)
	}
	if profile.Gifted {
		out = append(out, ContextGiftedTalented)
	}
	if lang := strings.ToLower(profile.Language); lang != "" && lang != "en" && !strings.HasPrefix(lang, "en-") {
		out = append(out, ContextELL)
	}
	switch strings.ToLower(signals[SignalDeliveryMode]) {
	case "remote", "online":
		out = append(out, ContextRemoteLearning)
	case "blended", "hybrid":
		out = append(out, ContextBlendedLearning)
	}

	return out
}

// resolveLearningStyle 显式信号 > 画像偏好 > 行为偏好历史最高权重项 > mixed。
func resolveLearningStyle(signals map[string]string, profile *LearnerProfile) string {
	if v := strings.ToLower(signals[SignalLearningStyle]); learningStyles[v] {
		return v
	}
	if v := strings.ToLower(profile.LearningStyle); learningStyles[v] {
		return v
	}
	if style := topContentPreference(profile.ContentPreferences); style != "" {
		return style
	}
	return StyleMixed
}

// topContentPreference 返回权重最高的已知风格；同权重时取字典序靠前者，保证确定性。
func topContentPreference(prefs map[string]float64) string {
	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		if learningStyles[strings.ToLower(k)] {
			keys = append(keys, strings.ToLower(k))
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	best := keys[0]
	for _, k := range keys[1:] {
		if prefs[k] > prefs[best] {
			best = k
		}
	}
	return best
}

// assessCognitiveLoad 四因子平均后分档：<0.4 low，<0.7 medium，否则 high。
// 建议规则独立触发，任意子集可同时命中。
func assessCognitiveLoad(signals map[string]string, profile *LearnerProfile) CognitiveLoad {
	complexity := 0.5
	if raw, ok := signals[SignalComplexity]; ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			complexity = v
		}
	}

	factors := CognitiveFactors{
		Complexity:      clamp01(complexity),
		PriorKnowledge:  clamp01(defaultFactor(profile.Cognitive.PriorKnowledge, 0.5)),
		WorkingMemory:   clamp01(defaultFactor(profile.Cognitive.WorkingMemory, 0.5)),
		ProcessingSpeed: clamp01(defaultFactor(profile.Cognitive.ProcessingSpeed, 0.5)),
	}

	avg := (factors.Complexity + factors.PriorKnowledge + factors.WorkingMemory + factors.ProcessingSpeed) / 4

	level := "high"
	switch {
	case avg < 0.4:
		level = "low"
	case avg < 0.7:
		level = "medium"
	}

	recs := make([]string, 0, 3)
	if factors.Complexity > 0.7 {
		recs = append(recs, "reduce complexity")
	}
	if factors.WorkingMemory < 0.4 {
		recs = append(recs, "chunk content")
	}
	if factors.PriorKnowledge < 0.3 {
		recs = append(recs, "add background material")
	}

	return CognitiveLoad{Level: level, Factors: factors, Recommendations: recs}
}

// assessAccessibilityNeeds 按需求数分档（0 none / ≤2 mild / ≤4 moderate / >4 severe），
// 辅助技术与教学调整按需求查表取并集去重。
func assessAccessibilityNeeds(profile *LearnerProfile) AccessibilityProfile {
	primary := filterKnownNeeds(profile.AccessibilityNeeds)

	severity := "severe"
	switch n := len(primary); {
	case n == 0:
		severity = "none"
	case n <= 2:
		severity = "mild"
	case n <= 4:
		severity = "moderate"
	}

	tech := make([]string, 0)
	accom := make([]string, 0)
	for _, need := range primary {
		tech = appendUnique(tech, assistiveTechnologies[need]...)
		accom = appendUnique(accom, accommodations[need]...)
	}

	return AccessibilityProfile{
		Primary:             primary,
		Severity:            severity,
		AssistiveTechnology: tech,
		Accommodations:      accom,
	}
}

// filterKnownNeeds 只保留闭合词表内的需求，去重并保持输入顺序。
func filterKnownNeeds(needs []string) []string {
	known := map[string]bool{
		NeedVisual:    true,
		NeedHearing:   true,
		NeedMotor:     true,
		NeedCognitive: true,
	}
	out := make([]string, 0, len(needs))
	seen := map[string]bool{}
	for _, n := range needs {
		n = strings.ToLower(strings.TrimSpace(n))
		if known[n] && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func languagePreferences(profile *LearnerProfile) []string {
	if profile.Language == "" {
		return []string{"en"}
	}
	if strings.ToLower(profile.Language) == "en" {
		return []string{"en"}
	}
	// 非英语母语者保留母语优先、英语兜底
	return []string{strings.ToLower(profile.Language), "en"}
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func defaultFactor(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
