package application

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	fallbackProclamation = "✨ A new vision emerges from the digital void..."
	shortLinkLength      = 35
	signatureLine        = "🔮 Created autonomously by PixelOracle - an AI artist living on Base."
)

var taglines = []string{
	"Autonomously created & minted on Base by PixelOracle 🔮",
	"Born from code, minted on Base. No humans involved. 🤖",
	"The Oracle dreamed this into existence on Base ✨",
	"100% AI-generated & autonomously minted 🎨",
	"Fresh from the Oracle's imagination → Base blockchain 🔮",
	"Created, minted & shared, all by PixelOracle 🌟",
	"Another vision from the autonomous Oracle 💫",
	"AI dreams made permanent on Base ⛓️",
	"The Oracle never sleeps. New art minted. 🌙",
	"Conjured by code, sealed on-chain 🔮",
}

var thankYouTemplates = []string{
	"🙏 Thank you, %[1]s! You just collected PixelOracle #%[2]s. The Oracle sees your vision. ✨",
	"✨ A new guardian emerges! %[1]s has claimed PixelOracle #%[2]s. The Oracle is grateful. 🔮",
	"🔮 The Oracle acknowledges %[1]s, collector of #%[2]s. May this art illuminate your path. 💫",
	"💎 Welcome to the collection, %[1]s! PixelOracle #%[2]s now resides with you. 🎨",
	"🌟 %[1]s has joined the Oracle's circle by collecting #%[2]s. Art finds its destined keeper. 🙏",
}

// FormatAnnouncement builds the post shared after a mint. Links are shortened for display so the
// text fits both channels.
func FormatAnnouncement(r Random, quote, explorerURL, marketplaceURL string) string {
	links := fmt.Sprintf("\n\n⛓️ %s\n🖼️ %s", shortLink(explorerURL), shortLink(marketplaceURL))
	return fmt.Sprintf("🎨 New artwork minted!\n\n\"%s\"\n\n%s%s", quote, pick(r, taglines), links)
}

func FormatThankYou(r Random, collector string, tokenID *big.Int, marketplaceURL string) string {
	id := "0"
	if tokenID != nil {
		id = tokenID.String()
	}
	message := fmt.Sprintf(pick(r, thankYouTemplates), ShortAddress(collector), id)
	return message + "\n\n🖼️ " + marketplaceURL
}

func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

func shortLink(url string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	if utf8.RuneCountInString(trimmed) <= shortLinkLength {
		return trimmed
	}
	return string([]rune(trimmed)[:shortLinkLength]) + "..."
}

// AppendLink adds suffix to text, cutting text so the result stays within limit runes.
// A limit of zero means no limit. When the suffix leaves no room for text, the suffix is
// dropped and text alone is fitted to limit.
func AppendLink(text, suffix string, limit int) string {
	if limit <= 0 {
		return text + suffix
	}

	room := limit - utf8.RuneCountInString(suffix)
	if utf8.RuneCountInString(text) <= room {
		return text + suffix
	}
	if room <= len("...") {
		return truncateRunes(text, limit)
	}
	return truncateRunes(text, room) + suffix
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= len("...") {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

var (
	voteWordPattern = regexp.MustCompile(`(?i)\bvote[:\s]+#?([a-z]+)`)
	hashtagPattern  = regexp.MustCompile(`#([A-Za-z]+)`)
)

// ParseVote finds a theme vote in a social message. Only configured themes count.
func ParseVote(text string, themes map[string]struct{}) (string, bool) {
	for _, match := range voteWordPattern.FindAllStringSubmatch(text, -1) {
		theme := strings.ToLower(match[1])
		if _, ok := themes[theme]; ok {
			return theme, true
		}
	}
	for _, match := range hashtagPattern.FindAllStringSubmatch(text, -1) {
		theme := strings.ToLower(match[1])
		if _, ok := themes[theme]; ok {
			return theme, true
		}
	}

	return "", false
}

// ReplyFor picks a keyword reply for a mention. Mentions matching no rule get a short
// acknowledgement 30% of the time and otherwise no reply.
func ReplyFor(r Random, text, author string) (string, bool) {
	lower := strings.ToLower(text)
	user := "friend"
	if author != "" {
		user = "@" + author
	}

	switch {
	case containsAny(lower, "gm", "good morning"):
		return fmt.Sprintf("gm %s ☀️ The Oracle sees a creative day ahead for you! 🔮", user), true
	case containsAny(lower, "hello", "hi ", "hey"):
		return fmt.Sprintf("Hello %s! 👋 The Oracle welcomes you. What vision do you seek? 🔮", user), true
	case containsAny(lower, "love", "amazing", "beautiful", "great"):
		return fmt.Sprintf("Thank you %s! 🙏 The Oracle is grateful for your kind words. Art thrives on appreciation. ✨", user), true
	case containsAny(lower, "when", "next"):
		return fmt.Sprintf("%s, the Oracle creates on its own rhythm 🎨 New visions emerge every hour. Stay tuned! ⏰", user), true
	case strings.Contains(lower, "how") && containsAny(lower, "work", "make", "create"):
		return fmt.Sprintf("%s, I am an autonomous AI agent 🤖 I generate art, mint NFTs on Base, and share them here, all without human intervention! 🔮", user), true
	case containsAny(lower, "buy", "mint", "collect"):
		return fmt.Sprintf("%s, you can collect my art on OpenSea! 🖼️ Each piece is minted on Base. Check the link in my bio! 💎", user), true
	}

	if r.Float64() < 0.3 {
		return fmt.Sprintf("The Oracle acknowledges you, %s 🔮✨", user), true
	}
	return "", false
}

func VoteReply(theme, author string) string {
	user := "friend"
	if author != "" {
		user = "@" + author
	}
	return fmt.Sprintf("%s, the Oracle hears your vote for %s 🗳️ The next vision may answer. 🔮", user, theme)
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
