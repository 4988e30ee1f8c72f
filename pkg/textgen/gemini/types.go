package gemini

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

type Candidate struct {
	Content *Content `json:"content"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Text returns candidates[0].content.parts[0].text and whether the response
// has that shape with a non-empty value.
func (r *GenerateContentResponse) Text() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}

	content := r.Candidates[0].Content

	if content == nil || len(content.Parts) == 0 || content.Parts[0].Text == "" {
		return "", false
	}

	return content.Parts[0].Text, true
}
