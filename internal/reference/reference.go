// Package reference carries the static past-papers digest that grounds
// session generation. The blob is compiled into the binary; there is no
// runtime document ingestion.
package reference

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/medprep/backend/internal/domain/curriculum"
)

//go:embed pastpapers.txt
var content string

// Content returns the full past-papers digest used as prompt context.
func Content() string {
	return content
}

// Weightage summarizes how often exam themes appear in the reference
// material. The presentation layer shows it as an informal "what gets
// asked a lot" hint next to the topic picker; it plays no part in the
// attempt-log statistics.
type Weightage struct {
	Subject       curriculum.Subject `json:"subject"`
	Topic         string             `json:"topic"`
	TopicMentions map[string]int     `json:"topicWeightage"`
	QuestionTypes map[string]int     `json:"questionTypeDistribution"`
	ContentLength int                `json:"totalContentLength"`
}

var topicPatterns = map[curriculum.Subject]map[string]*regexp.Regexp{
	curriculum.SubjectAnatomy: {
		"superior extremity": regexp.MustCompile(`(?i)superior extremity|brachial|shoulder|carpal`),
		"inferior extremity": regexp.MustCompile(`(?i)inferior extremity|femoral|saphenous|peroneal`),
		"thorax":             regexp.MustCompile(`(?i)thorax|intercostal|sternal`),
		"abdomen":            regexp.MustCompile(`(?i)abdomen|stomach|inguinal`),
		"cardiac":            regexp.MustCompile(`(?i)heart|cardiac|coronary|aorta`),
		"neuro":              regexp.MustCompile(`(?i)internal capsule|cerebellum|circle of willis`),
	},
	curriculum.SubjectPhysiology: {
		"cardiovascular": regexp.MustCompile(`(?i)cardiovascular|cardiac|heart`),
		"respiratory":    regexp.MustCompile(`(?i)respiratory|lung|pulmonary|oxygen`),
		"blood":          regexp.MustCompile(`(?i)blood|haemoglobin|erythro|haemostasis`),
		"nervous":        regexp.MustCompile(`(?i)nervous|nerve|neuro`),
		"endocrine":      regexp.MustCompile(`(?i)endocrine|hormone|thyroid|insulin`),
	},
	curriculum.SubjectBiochemistry: {
		"carbohydrate": regexp.MustCompile(`(?i)carbohydrate|glycolysis|glucose|glycogen`),
		"protein":      regexp.MustCompile(`(?i)protein|amino acid|enzyme|urea`),
		"lipid":        regexp.MustCompile(`(?i)lipid|fatty acid|cholesterol|lipoprotein`),
		"metabolism":   regexp.MustCompile(`(?i)metabolism|metabolic|oxidation`),
	},
}

var questionTypePatterns = map[string]*regexp.Regexp{
	"longEssay":  regexp.MustCompile(`(?i)10 marks|long essay`),
	"shortNotes": regexp.MustCompile(`(?i)5 marks|short notes`),
	"mcq":        regexp.MustCompile(`(?i)mcq|multiple choice`),
	"reasoning":  regexp.MustCompile(`(?i)3 marks|explain why`),
}

// AnalyzeWeightage counts theme and question-type mentions in the digest
// for one subject. topic may be empty.
func AnalyzeWeightage(subject curriculum.Subject, topic string) Weightage {
	w := Weightage{
		Subject:       subject,
		Topic:         topic,
		TopicMentions: map[string]int{},
		QuestionTypes: map[string]int{},
		ContentLength: len(content),
	}
	if w.Topic == "" {
		w.Topic = "General"
	}

	for name, pat := range topicPatterns[subject] {
		w.TopicMentions[name] = len(pat.FindAllStringIndex(content, -1))
	}
	for name, pat := range questionTypePatterns {
		w.QuestionTypes[name] = len(pat.FindAllStringIndex(content, -1))
	}
	return w
}

// Excerpt returns the digest truncated to max bytes on a line boundary,
// for prompt budgets smaller than the full blob.
func Excerpt(max int) string {
	if max <= 0 || max >= len(content) {
		return content
	}
	cut := content[:max]
	if i := strings.LastIndexByte(cut, '\n'); i > 0 {
		cut = cut[:i]
	}
	return cut
}
