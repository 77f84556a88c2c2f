package valueobject

import "fmt"

// Language selects one side of a bilingual label.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// NewLanguage parses a language code; the empty string selects English.
func NewLanguage(s string) (Language, error) {
	switch Language(s) {
	case "", English:
		return English, nil
	case Arabic:
		return Arabic, nil
	}
	return "", fmt.Errorf("invalid language: %q", s)
}

// Label is a fixed piece of user-facing text with an English and an Arabic form.
type Label int

const (
	LabelUnknown Label = iota
	LabelAffordable
	LabelModeratelyAffordable
	LabelPotentiallyUnaffordable
	LabelRiskLow
	LabelRiskMedium
	LabelRiskHigh
	LabelRiskLowDescription
	LabelRiskMediumDescription
	LabelRiskHighDescription
	LabelAdviceNoMeasures
	LabelAdviceBasicPrecautions
	LabelAdviceSpecialMeasures
	LabelFlood
	LabelAirPollution
	LabelHeatIsland
	LabelWaterQuality
	LabelSafety
	LabelSchools
	LabelHealthcare
	LabelShopping
	LabelTransportation
	LabelEnvironmental
	LabelBestMatch
	LabelRunnerUp
	LabelThirdChoice
	LabelChatWelcome
	LabelChatFallback
)

type translation struct {
	en, ar string
}

var translations = map[Label]translation{
	LabelAffordable:              {"Affordable", "ميسور التكلفة"},
	LabelModeratelyAffordable:    {"Moderately affordable", "ميسور التكلفة نسبياً"},
	LabelPotentiallyUnaffordable: {"Potentially unaffordable", "قد يكون مرهقاً مالياً"},
	LabelRiskLow:                 {"Low", "منخفض"},
	LabelRiskMedium:              {"Medium", "متوسط"},
	LabelRiskHigh:                {"High", "مرتفع"},
	LabelRiskLowDescription:      {"Minimal risk, no special precautions needed", "مخاطر ضئيلة، لا حاجة لإجراءات خاصة"},
	LabelRiskMediumDescription:   {"Moderate risk, basic precautions recommended", "مخاطر متوسطة، يوصى باتخاذ احتياطات أساسية"},
	LabelRiskHighDescription:     {"High risk, significant precautions recommended", "مخاطر عالية، يوصى باتخاذ احتياطات كبيرة"},
	LabelAdviceNoMeasures:        {"No special measures needed", "لا حاجة لإجراءات خاصة"},
	LabelAdviceBasicPrecautions:  {"Consider basic precautions", "النظر في اتخاذ احتياطات أساسية"},
	LabelAdviceSpecialMeasures:   {"Special measures recommended", "يوصى باتخاذ تدابير خاصة"},
	LabelFlood:                   {"Flood Risk", "مخاطر الفيضانات"},
	LabelAirPollution:            {"Air Pollution", "تلوث الهواء"},
	LabelHeatIsland:              {"Heat Island", "الجزيرة الحرارية"},
	LabelWaterQuality:            {"Water Quality", "جودة المياه"},
	LabelSafety:                  {"Safety", "الأمان"},
	LabelSchools:                 {"Schools", "المدارس"},
	LabelHealthcare:              {"Healthcare", "الرعاية الصحية"},
	LabelShopping:                {"Shopping", "التسوق"},
	LabelTransportation:          {"Transportation", "المواصلات"},
	LabelEnvironmental:           {"Environment", "البيئة"},
	LabelBestMatch:               {"Best match", "الخيار الأفضل"},
	LabelRunnerUp:                {"Runner-up", "الخيار الثاني"},
	LabelThirdChoice:             {"Third choice", "الخيار الثالث"},
	LabelChatWelcome: {
		"Hello! I'm Suhail, your smart real estate assistant. How can I help you today?",
		"مرحباً! أنا سهيل، مساعدك العقاري الذكي. كيف يمكنني مساعدتك اليوم؟",
	},
	LabelChatFallback: {
		"Sorry, there was an error connecting to my knowledge base. Please try again later.",
		"عذراً، حدث خطأ في الاتصال بقاعدة المعرفة. يرجى المحاولة مرة أخرى لاحقاً.",
	},
}

// In returns the label text in the given language. Unknown labels render as
// the empty string.
func (l Label) In(lang Language) string {
	t := translations[l]
	if lang == Arabic {
		return t.ar
	}
	return t.en
}

// Bilingual renders "English / Arabic", the form used in table cells.
func (l Label) Bilingual() string {
	t, ok := translations[l]
	if !ok {
		return ""
	}
	return t.en + " / " + t.ar
}

// Message renders Arabic first and English second, separated by a blank
// line, the form used for chat replies.
func (l Label) Message() string {
	t, ok := translations[l]
	if !ok {
		return ""
	}
	return t.ar + "\n\n" + t.en
}

// OrdinalLabel returns the label for a 0-based rank position, or LabelUnknown
// beyond the third place.
func OrdinalLabel(rank int) Label {
	switch rank {
	case 0:
		return LabelBestMatch
	case 1:
		return LabelRunnerUp
	case 2:
		return LabelThirdChoice
	}
	return LabelUnknown
}
