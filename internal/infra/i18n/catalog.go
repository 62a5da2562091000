// Package i18n holds the multilingual voice alert catalog.
package i18n

import (
	"strings"

	"tidewise/internal/domain/entity"
	"tidewise/internal/domain/service"

	"golang.org/x/text/language"
)

const fallbackLanguage = "en"

// supported lists the catalog languages. The first entry is the matcher default.
var supported = []string{"en", "hi", "te", "ta", "bn", "gu", "mr", "or", "pa", "ur"}

var phrases = map[string]map[string]string{
	"en": {
		entity.PhraseDangerZone:   "Entering danger zone! Please navigate to safety immediately.",
		entity.PhraseSOSNearby:    "SOS alert nearby. A boat close to you needs help.",
		entity.PhraseSOSReceived:  "Your SOS has been sent. Help is on the way.",
		entity.PhraseAuthoritySOS: "Emergency SOS received. Immediate response required.",
	},
	"hi": {
		entity.PhraseDangerZone:   "खतरे के क्षेत्र में प्रवेश! कृपया तुरंत सुरक्षित स्थान पर जाएं।",
		entity.PhraseSOSNearby:    "पास में SOS अलर्ट। आपके निकट एक नाव को मदद चाहिए।",
		entity.PhraseSOSReceived:  "आपका SOS भेज दिया गया है। मदद आ रही है।",
		entity.PhraseAuthoritySOS: "आपातकालीन SOS प्राप्त हुआ। तुरंत कार्रवाई आवश्यक है।",
	},
	"te": {
		entity.PhraseDangerZone:   "ప్రమాద ప్రాంతంలోకి ప్రవేశిస్తున్నారు! వెంటనే సురక్షిత ప్రాంతానికి వెళ్లండి.",
		entity.PhraseSOSNearby:    "సమీపంలో SOS హెచ్చరిక. మీ దగ్గర ఉన్న పడవకు సహాయం కావాలి.",
		entity.PhraseSOSReceived:  "మీ SOS పంపబడింది. సహాయం వస్తోంది.",
		entity.PhraseAuthoritySOS: "అత్యవసర SOS అందింది. వెంటనే స్పందించాలి.",
	},
	"ta": {
		entity.PhraseDangerZone:   "ஆபத்து மண்டலத்திற்குள் நுழைகிறீர்கள்! உடனே பாதுகாப்பான இடத்திற்கு செல்லுங்கள்.",
		entity.PhraseSOSNearby:    "அருகில் SOS எச்சரிக்கை. உங்கள் அருகே ஒரு படகுக்கு உதவி தேவை.",
		entity.PhraseSOSReceived:  "உங்கள் SOS அனுப்பப்பட்டது. உதவி வருகிறது.",
	},
	"bn": {
		entity.PhraseDangerZone:  "বিপদ অঞ্চলে প্রবেশ করছেন! অবিলম্বে নিরাপদ স্থানে যান।",
		entity.PhraseSOSNearby:   "কাছাকাছি SOS সতর্কতা। আপনার কাছে একটি নৌকার সাহায্য দরকার।",
		entity.PhraseSOSReceived: "আপনার SOS পাঠানো হয়েছে। সাহায্য আসছে।",
	},
	"gu": {
		entity.PhraseDangerZone: "જોખમી વિસ્તારમાં પ્રવેશ! કૃપા કરીને તરત સુરક્ષિત સ્થળે જાઓ.",
	},
	"mr": {
		entity.PhraseDangerZone: "धोकादायक क्षेत्रात प्रवेश! कृपया त्वरित सुरक्षित ठिकाणी जा.",
	},
	"or": {
		entity.PhraseDangerZone: "ବିପଦ ଅଞ୍ଚଳରେ ପ୍ରବେଶ! ଦୟାକରି ତୁରନ୍ତ ସୁରକ୍ଷିତ ସ୍ଥାନକୁ ଯାଆନ୍ତୁ।",
	},
	"pa": {
		entity.PhraseDangerZone: "ਖ਼ਤਰੇ ਵਾਲੇ ਖੇਤਰ ਵਿੱਚ ਦਾਖਲ! ਕਿਰਪਾ ਕਰਕੇ ਤੁਰੰਤ ਸੁਰੱਖਿਅਤ ਥਾਂ ਤੇ ਜਾਓ।",
	},
	"ur": {
		entity.PhraseDangerZone: "خطرناک علاقے میں داخل! براہ کرم فوراً محفوظ مقام پر جائیں۔",
	},
}

// Catalog matches requested languages against the supported set.
type Catalog struct {
	matcher    language.Matcher
	defaultIdx int
}

// NewCatalog creates the catalog. defaultLang is used when a request names no
// language; it falls back to English when unsupported.
func NewCatalog(defaultLang string) *Catalog {
	tags := make([]language.Tag, len(supported))
	for i, code := range supported {
		tags[i] = language.MustParse(code)
	}

	c := &Catalog{matcher: language.NewMatcher(tags)}
	if defaultLang != "" {
		c.defaultIdx = c.match(defaultLang)
	}

	return c
}

// Ensure Catalog implements service.PhraseCatalog.
var _ service.PhraseCatalog = (*Catalog)(nil)

// Lookup returns the phrase in the matched language, falling back to English
// text when that language has no translation for key.
func (c *Catalog) Lookup(key, lang string) (*entity.VoicePhrase, bool) {
	if _, ok := phrases[fallbackLanguage][key]; !ok {
		return nil, false
	}

	code := c.Language(lang)
	text, ok := phrases[code][key]
	if !ok {
		code = fallbackLanguage
		text = phrases[fallbackLanguage][key]
	}

	return &entity.VoicePhrase{
		Key:      key,
		Language: code,
		Locale:   localeFor(code),
		Text:     text,
	}, true
}

// Locale returns the TTS locale for the best match of lang.
func (c *Catalog) Locale(lang string) string {
	return localeFor(c.Language(lang))
}

// Language returns the supported language code that best matches lang.
func (c *Catalog) Language(lang string) string {
	if strings.TrimSpace(lang) == "" {
		return supported[c.defaultIdx]
	}

	return supported[c.match(lang)]
}

func (c *Catalog) match(lang string) int {
	var (
		tags []language.Tag
		err  error
	)
	if strings.ContainsAny(lang, ",;") {
		tags, _, err = language.ParseAcceptLanguage(lang)
	} else {
		var tag language.Tag
		tag, err = language.Parse(strings.TrimSpace(lang))
		tags = []language.Tag{tag}
	}
	if err != nil || len(tags) == 0 {
		return c.defaultIdx
	}

	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return c.defaultIdx
	}

	return idx
}

func localeFor(code string) string {
	return code + "-IN"
}
