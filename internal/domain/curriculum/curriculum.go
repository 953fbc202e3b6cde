package curriculum

// Subject is one of the three 1st year MBBS curriculum subjects.
type Subject string

const (
	SubjectAnatomy      Subject = "Anatomy"
	SubjectPhysiology   Subject = "Physiology"
	SubjectBiochemistry Subject = "Biochemistry"
)

// EntireSubject is the pseudo-topic users pick when they want a session
// drawn from the whole subject rather than a single topic.
const EntireSubject = "Entire Subject"

// Subjects returns the closed set of curriculum subjects in display order.
func Subjects() []Subject {
	return []Subject{SubjectAnatomy, SubjectPhysiology, SubjectBiochemistry}
}

var topics = map[Subject][]string{
	SubjectAnatomy: {
		EntireSubject,
		"Superior Extremity",
		"Inferior Extremity",
		"Thorax",
		"Abdomen",
		"Head and Neck",
		"Neuro-Anatomy",
		"General Anatomy, Embryology & Genetics",
	},
	SubjectPhysiology: {
		EntireSubject,
		"General & Nerve Muscle Physiology",
		"Blood",
		"Respiratory System",
		"Cardiovascular System",
		"Gastro-intestinal System",
		"Excretory System",
		"Reproductive System",
		"Endocrine System",
		"Central Nervous System",
		"Special Senses",
	},
	SubjectBiochemistry: {
		EntireSubject,
		"Carbohydrate Chemistry & Metabolism",
		"Lipid Chemistry & Metabolism",
		"Protein Chemistry & Metabolism",
		"Nucleotide Chemistry & Metabolism",
		"Enzymes & Clinical Function Tests",
		"Molecular Biology & Genetics",
		"Vitamins, Minerals & Antioxidants",
	},
}

// Valid reports whether s is one of the curriculum subjects.
func Valid(s Subject) bool {
	_, ok := topics[s]
	return ok
}

// TopicsFor returns the fixed topic list for a subject, EntireSubject first.
// Returns nil for an unknown subject.
func TopicsFor(s Subject) []string {
	src, ok := topics[s]
	if !ok {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// HasTopic reports whether topic belongs to the subject's fixed list.
func HasTopic(s Subject, topic string) bool {
	for _, t := range topics[s] {
		if t == topic {
			return true
		}
	}
	return false
}
