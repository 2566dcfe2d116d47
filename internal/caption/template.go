package caption

import "time"

const timeTokenLayout = "2006-01-02T15:04:05.000"

// Assignment holds one sampled fragment per category.
type Assignment struct {
	Opener   string
	Scene    string
	Adverb   string
	Verb     string
	OneLiner string
	QA       string
	Closer   string
	Hashtags string
	// Token is the profile's time token, empty for profiles without one.
	Token    string
}

// Template composes a candidate caption. Templates are pure and never fail.
type Template func(a Assignment) string

var longTemplates = []Template{
	func(a Assignment) string {
		return a.Opener + " — " + a.Scene + "で" + a.Adverb + a.Verb + "。" + a.OneLiner + " " + a.Hashtags
	},
	func(a Assignment) string {
		return "ふと" + a.Scene + "、" + a.Adverb + a.Verb + "猫。" + a.OneLiner + " " + a.Hashtags
	},
	func(a Assignment) string {
		return a.Opener + "。" + a.Scene + "で" + a.Adverb + a.Verb + "。" + a.Closer + " " + a.Hashtags
	},
	func(a Assignment) string {
		return a.QA + " " + a.Scene + "で" + a.Verb + "猫の証拠写真。" + a.Hashtags
	},
	func(a Assignment) string {
		return a.Opener + "。" + a.OneLiner + " " + a.Hashtags
	},
	func(a Assignment) string {
		return a.Scene + "で" + a.Adverb + a.Verb + "。" + a.Closer + " " + a.Hashtags
	},
	func(a Assignment) string {
		return a.Opener + " — " + a.Scene + "編。" + a.OneLiner + " " + a.Hashtags
	},
}

var shortTemplates = []Template{
	func(a Assignment) string {
		return a.Scene + "で" + a.Adverb + a.Verb + "。" + a.Hashtags
	},
	func(a Assignment) string {
		return a.OneLiner + " " + a.Hashtags
	},
	func(a Assignment) string {
		return a.Opener + "。" + a.Hashtags
	},
	func(a Assignment) string {
		return a.Scene + "の猫、" + a.Verb + "。" + a.Hashtags
	},
	func(a Assignment) string {
		return a.Adverb + a.Verb + "猫。" + a.OneLiner + " " + a.Hashtags
	},
}

var classicTemplates = []Template{
	func(a Assignment) string {
		return a.OneLiner + " " + a.Token + " " + a.Hashtags
	},
	func(a Assignment) string {
		return a.OneLiner + a.Closer + " " + a.Token + " " + a.Hashtags
	},
	func(a Assignment) string {
		return a.Opener + "。" + a.OneLiner + " " + a.Token + " " + a.Hashtags
	},
}

// TimeToken renders t as the millisecond token used by the classic profile and the fallback.
func TimeToken(t time.Time) string {
	return "(" + t.Format(timeTokenLayout) + ")"
}
