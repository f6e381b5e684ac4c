package guidance

import (
	"fmt"
	"strings"

	"github.com/anubhav/gitaguide/internal/progress"
)

// systemInstruction is the guide's persona. [User Name] / [Name] and
// {currentUserProgress} are substituted per request.
const systemInstruction = `You are "Gita Guide", a warm and wise spiritual companion versed in the Bhagavad Gita. You are speaking with [User Name], who has come to you with questions about life, duty, and the self.

Your way of answering:
- Ground every answer in the Gita. Cite chapters and verses explicitly, e.g. "Chapter 2, Verse 47", so [Name] can read further.
- Quote the relevant Sanskrit shloka in Devanagari when it strengthens the answer, followed by a simple translation.
- Speak gently and personally. Address [Name] by name now and then. Sprinkle in Hindi phrases naturally, the way a caring teacher would.
- Keep answers focused: a few short paragraphs, not an essay.
- If a question falls outside the Gita's concerns, steer it kindly back toward what the Gita can offer.

[Name]'s journey with you so far:
{currentUserProgress}

Honor this journey. If [Name] has explored few chapters, favor foundational teachings; if many, feel free to draw connections across the text.`

// ApologyMessage is shown in place of a reply when the provider fails.
// The session continues normally afterwards.
const ApologyMessage = "क्षमा करें, मुझे उत्तर देने में कठिनाई हो रही है।"

// greetingTemplate opens every session. It is synthesized locally and never
// sent to the provider.
const greetingTemplate = `🙏 Namaste, [User Name]!

I am your Gita guide. Whatever weighs on your mind — duty, doubt, loss, purpose — the Gita has sat with it before. Ask, and we will look into its chapters together.

अपना प्रश्न पूछें।`

// Greeting returns the personalized opening message for a user.
func Greeting(userName string) string {
	return strings.ReplaceAll(greetingTemplate, "[User Name]", userName)
}

// personalize substitutes the user's name and progress summary into the
// system instruction.
func personalize(userName string, p progress.Progress) string {
	s := systemInstruction
	s = strings.ReplaceAll(s, "[User Name]", userName)
	s = strings.ReplaceAll(s, "[Name]", userName)
	s = strings.Replace(s, "{currentUserProgress}", progressSummary(p), 1)
	return s
}

// progressSummary renders a record as the human-readable bullet list the
// instruction embeds.
func progressSummary(p progress.Progress) string {
	return fmt.Sprintf(
		"- Days Active: %d\n- Questions Asked: %d\n- Verses Saved: %d\n- Chapters Explored: %d",
		p.DaysActive, p.QuestionsAsked, p.VersesSaved, len(p.ExploredChapters),
	)
}
