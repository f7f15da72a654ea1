package scaffold

// modelConfig is the Gemma config.json emitted for every scaffold. The values
// match google/gemma-2b; nothing here is derived from the input GGUF.
type modelConfig struct {
	Architectures         []string `json:"architectures"`
	AttentionBias         bool     `json:"attention_bias"`
	AttentionDropout      float64  `json:"attention_dropout"`
	BosTokenID            int      `json:"bos_token_id"`
	EosTokenID            int      `json:"eos_token_id"`
	HiddenAct             string   `json:"hidden_act"`
	HiddenSize            int      `json:"hidden_size"`
	InitializerRange      float64  `json:"initializer_range"`
	IntermediateSize      int      `json:"intermediate_size"`
	MaxPositionEmbeddings int      `json:"max_position_embeddings"`
	ModelType             string   `json:"model_type"`
	NumAttentionHeads     int      `json:"num_attention_heads"`
	NumHiddenLayers       int      `json:"num_hidden_layers"`
	NumKeyValueHeads      int      `json:"num_key_value_heads"`
	PadTokenID            int      `json:"pad_token_id"`
	RopeTheta             float64  `json:"rope_theta"`
	RmsNormEps            float64  `json:"rms_norm_eps"`
	TieWordEmbeddings     bool     `json:"tie_word_embeddings"`
	TorchDtype            string   `json:"torch_dtype"`
	TransformersVersion   string   `json:"transformers_version"`
	UseCache              bool     `json:"use_cache"`
	VocabSize             int      `json:"vocab_size"`
}

var gemmaConfig = modelConfig{
	Architectures:         []string{"GemmaForCausalLM"},
	AttentionBias:         false,
	AttentionDropout:      0.0,
	BosTokenID:            2,
	EosTokenID:            1,
	HiddenAct:             "gelu",
	HiddenSize:            2048,
	InitializerRange:      0.02,
	IntermediateSize:      16384,
	MaxPositionEmbeddings: 8192,
	ModelType:             "gemma",
	NumAttentionHeads:     8,
	NumHiddenLayers:       18,
	NumKeyValueHeads:      1,
	PadTokenID:            0,
	RopeTheta:             10000.0,
	RmsNormEps:            1e-06,
	TieWordEmbeddings:     true,
	TorchDtype:            "bfloat16",
	TransformersVersion:   "4.38.0",
	UseCache:              true,
	VocabSize:             256000,
}

// ConfigJSON renders the fixed config.json document (2-space indent, trailing
// newline). Identical on every call.
func ConfigJSON() []byte {
	return marshalDoc(gemmaConfig)
}
