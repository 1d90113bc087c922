package classifier

import "strings"

// Shared lexicons. Ordering inside each list matters where noted: multi-word
// entries come before their substrings so the longest match wins.

var greetingPrefixes = []string{
	"good morning", "good afternoon", "good evening", "what's up", "whats up",
	"hello", "howdy", "hey", "hiya", "hi", "yo", "sup",
}

var exerciseNames = []string{
	"romanian deadlift", "clean and jerk", "overhead press", "shoulder press",
	"bench press", "incline bench", "back squat", "front squat", "power clean",
	"hip thrust", "leg press", "barbell row", "pull up", "pull-up", "pull ups",
	"pull-ups", "chin up", "chin-up", "lat pulldown", "deadlift", "squat",
	"bench", "snatch", "clean", "press", "row", "curl", "lunge", "dip", "rdl",
	"ohp",
}

var bodyParts = []string{
	"hamstrings", "shoulders", "triceps", "biceps", "glutes", "quads",
	"calves", "chest", "back", "legs", "arms", "core", "abs",
}

// Named benchmark workouts. Lowercase; matched on word boundaries.
var wodNames = []string{
	"fight gone bad", "fran", "murph", "cindy", "grace", "helen", "diane",
	"karen", "annie", "isabel", "angie", "barbara", "chelsea", "jackie",
}

var substitutionPhrases = []string{
	"instead of", "swap", "substitute", "replace", "alternative to",
	"alternative for", "alternatives to", "can't do", "cant do", "cannot do",
	"something else for",
}

var formWords = []string{
	"form", "technique", "depth", "grip", "stance", "cue", "cues",
	"how to", "how do", "proper", "properly", "correctly", "setup",
}

var offTopicWords = []string{
	"weather", "stock market", "stocks", "crypto", "bitcoin", "movie",
	"movies", "netflix", "tv show", "politics", "election", "homework",
	"lottery", "horoscope", "celebrity",
}

var recoveryWords = []string{
	"pain", "hurts", "hurt", "sore", "soreness", "injury", "injured",
	"ache", "aching", "tweaked", "rest day", "recovery", "recover",
	"deload", "overtrained", "tendonitis",
}

var nutritionNouns = []string{
	"protein", "calories", "calorie", "macros", "carbs", "fats", "creatine",
	"supplement", "supplements", "diet", "meal", "meals", "bulking",
	"cutting", "nutrition",
}

var eatingVerbs = []string{"eat", "eating", "drink", "drinking"}

var constructionVerbs = []string{"create", "build", "make", "design", "plan", "write", "give me"}

var programNouns = []string{"program", "plan", "routine", "split", "schedule", "programming"}

var multiWeekMarkers = []string{
	"week program", "weeks", "month", "months", "8 week", "12 week",
	"8-week", "12-week", "16-week", "multi-week", "long term", "block",
}

var runningMarkers = []string{
	"running", "5k", "10k", "marathon", "half marathon", "couch to",
	"race", "jogging",
}

var dailyMarkers = []string{
	"today", "leg day", "push day", "pull day", "upper day", "lower day",
	"this session", "right now", "tonight",
}

var pastTenseVerbs = []string{
	"did", "hit", "benched", "squatted", "pressed", "lifted", "pulled",
	"deadlifted", "repped", "got", "finished", "completed", "just done",
}

var interrogatives = []string{
	"how", "what", "why", "when", "which", "where", "is ", "are ",
	"should", "can ", "could", "does", "do i", "do you",
}

var sameWeightReferents = []string{
	"same weight", "same load", "again", "another set", "one more set",
	"same as last", "same as before",
}

// containsAny reports whether msg contains any lexicon entry, returning the
// first hit
func containsAny(msg string, lexicon []string) (string, bool) {
	for _, entry := range lexicon {
		if strings.Contains(msg, entry) {
			return entry, true
		}
	}
	return "", false
}

// containsAnyWord is containsAny restricted to word boundaries, so short
// entries like "fran" do not fire inside unrelated words ("france").
func containsAnyWord(msg string, lexicon []string) (string, bool) {
	for _, entry := range lexicon {
		start := 0
		for {
			idx := strings.Index(msg[start:], entry)
			if idx == -1 {
				break
			}
			idx += start
			end := idx + len(entry)
			if (idx == 0 || !isWordChar(msg[idx-1])) && (end == len(msg) || !isWordChar(msg[end])) {
				return entry, true
			}
			start = idx + 1
		}
	}
	return "", false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func hasPrefixAny(msg string, lexicon []string) (string, bool) {
	for _, entry := range lexicon {
		if strings.HasPrefix(msg, entry) {
			return entry, true
		}
	}
	return "", false
}

// isQuestion is a cheap interrogative check shared by several rules
func isQuestion(msg string) bool {
	if strings.Contains(msg, "?") {
		return true
	}
	for _, marker := range interrogatives {
		if strings.HasPrefix(msg, marker) {
			return true
		}
	}
	return false
}

// HasSameWeightReferent reports whether the message refers back to the
// previously used weight ("same weight again")
func HasSameWeightReferent(message string) bool {
	_, ok := containsAny(strings.ToLower(message), sameWeightReferents)
	return ok
}
