package model

// ResultKind tags the shape of a normalized dispatch result.
type ResultKind string

// Result kinds. Exactly one is produced per dispatch.
const (
	KindJSON  ResultKind = "json"
	KindImage ResultKind = "image"
	KindText  ResultKind = "text"
	KindJoke  ResultKind = "joke"
	KindError ResultKind = "error"
)

// Result is the normalized output of one dispatch: a kind tag plus
// kind-specific data. Data holds any structured value for KindJSON, a URL
// string for KindImage, a plain string for KindText and KindError, and a
// Joke for KindJoke.
type Result struct {
	Kind ResultKind `json:"kind"`
	Data any        `json:"data"`
}

// Joke is the normalized two-part joke shape. Delivery is empty for
// single-part jokes.
type Joke struct {
	Category string `json:"category"`
	Setup    string `json:"setup"`
	Delivery string `json:"delivery"`
}

// JSONResult returns a Result carrying arbitrary parsed JSON.
func JSONResult(v any) Result {
	return Result{Kind: KindJSON, Data: v}
}

// ImageResult returns a Result carrying an image URL.
func ImageResult(url string) Result {
	return Result{Kind: KindImage, Data: url}
}

// TextResult returns a Result carrying a plain text payload.
func TextResult(s string) Result {
	return Result{Kind: KindText, Data: s}
}

// JokeResult returns a Result carrying a normalized joke.
func JokeResult(j Joke) Result {
	return Result{Kind: KindJoke, Data: j}
}

// ErrorResult returns a Result carrying a user-safe error message. The
// message must never include upstream or policy detail.
func ErrorResult(msg string) Result {
	return Result{Kind: KindError, Data: msg}
}
