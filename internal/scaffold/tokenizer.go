package scaffold

const metaspace = "▁"

type addedToken struct {
	ID         int    `json:"id"`
	Content    string `json:"content"`
	SingleWord bool   `json:"single_word"`
	Lstrip     bool   `json:"lstrip"`
	Rstrip     bool   `json:"rstrip"`
	Normalized bool   `json:"normalized"`
	Special    bool   `json:"special"`
}

// tokenizerSpec is the minimal tokenizer.json skeleton: three special tokens,
// a SentencePiece-style Metaspace pipeline and an empty Unigram vocabulary.
// A real vocabulary would have to come from the source model, which this tool
// does not extract.
type tokenizerSpec struct {
	Version       string         `json:"version"`
	Truncation    any            `json:"truncation"`
	Padding       any            `json:"padding"`
	AddedTokens   []addedToken   `json:"added_tokens"`
	Normalizer    map[string]any `json:"normalizer"`
	PreTokenizer  map[string]any `json:"pre_tokenizer"`
	PostProcessor map[string]any `json:"post_processor"`
	Decoder       map[string]any `json:"decoder"`
	Model         map[string]any `json:"model"`
}

func basicTokenizer() tokenizerSpec {
	return tokenizerSpec{
		Version:    "1.0",
		Truncation: nil,
		Padding:    nil,
		AddedTokens: []addedToken{
			{ID: 0, Content: "<pad>", Normalized: true, Special: true},
			{ID: 1, Content: "<eos>", Normalized: true, Special: true},
			{ID: 2, Content: "<bos>", Normalized: true, Special: true},
		},
		Normalizer: map[string]any{
			"type": "Sequence",
			"normalizers": []map[string]any{
				{"type": "Prepend", "prepend": metaspace},
				{"type": "Replace", "pattern": map[string]any{"String": " "}, "content": metaspace},
			},
		},
		PreTokenizer: map[string]any{
			"type":             "Metaspace",
			"replacement":      metaspace,
			"add_prefix_space": true,
			"prepend_scheme":   "first",
		},
		PostProcessor: map[string]any{
			"type": "TemplateProcessing",
			"single": []map[string]any{
				{"SpecialToken": map[string]any{"id": "<bos>", "type_id": 0}},
				{"Sequence": map[string]any{"id": "A", "type_id": 0}},
			},
			"pair": []map[string]any{
				{"SpecialToken": map[string]any{"id": "<bos>", "type_id": 0}},
				{"Sequence": map[string]any{"id": "A", "type_id": 0}},
				{"Sequence": map[string]any{"id": "B", "type_id": 1}},
				{"SpecialToken": map[string]any{"id": "<eos>", "type_id": 1}},
			},
			"special_tokens": map[string]any{
				"<bos>": map[string]any{"id": "<bos>", "ids": []int{2}, "tokens": []string{"<bos>"}},
				"<eos>": map[string]any{"id": "<eos>", "ids": []int{1}, "tokens": []string{"<eos>"}},
			},
		},
		Decoder: map[string]any{
			"type":             "Metaspace",
			"replacement":      metaspace,
			"add_prefix_space": true,
			"prepend_scheme":   "first",
		},
		Model: map[string]any{
			"type":   "Unigram",
			"unk_id": 0,
			"vocab":  []any{},
		},
	}
}

// TokenizerJSON renders the fixed tokenizer.json document. Identical on every
// call.
func TokenizerJSON() []byte {
	return marshalDoc(basicTokenizer())
}
