package tokenizer

import "testing"

// TestTokenizer_AttrMapPoolReuse verifies that the attribute index map is
// reset between tags rather than leaking membership across tokens.
func TestTokenizer_AttrMapPoolReuse(t *testing.T) {
	tok := New("<div class='test'>hello</div>")

	var tokens []Token
	for {
		token := tok.Next()
		if token.Type == EOF {
			break
		}
		tokens = append(tokens, token)
	}

	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
	if tokens[0].Type != StartTag || tokens[0].Name != "div" {
		t.Errorf("tokens[0] = %#v, want StartTag(div)", tokens[0])
	}
	if tokens[1].Type != Character || tokens[1].Data != "hello" {
		t.Errorf("tokens[1] = %#v, want Character(hello)", tokens[1])
	}
	if tokens[2].Type != EndTag || tokens[2].Name != "div" {
		t.Errorf("tokens[2] = %#v, want EndTag(div)", tokens[2])
	}
}

// TestAttrMapPoolReset verifies that a map returned to the pool comes back
// empty, so duplicate-attribute detection never sees stale entries from a
// previous tag.
func TestAttrMapPoolReset(t *testing.T) {
	m1 := getAttrMap()
	m1["class"] = struct{}{}
	m1["id"] = struct{}{}
	putAttrMap(m1)

	m2 := getAttrMap()
	if len(m2) != 0 {
		t.Errorf("len(m2) = %d, want 0 (reset)", len(m2))
	}
	putAttrMap(m2)
}

// TestTokenizer_DuplicateAttributeUsesPooledMap exercises the pooled map
// through the tokenizer's own duplicate-attribute detection.
func TestTokenizer_DuplicateAttributeUsesPooledMap(t *testing.T) {
	tokens := collectTokens(`<div a="1" a="2">`, DataState)
	if len(tokens) != 1 || tokens[0].Type != StartTag {
		t.Fatalf("tokens = %#v, want single StartTag", tokens)
	}
	if got := tokens[0].AttrVal("a"); got != "1" {
		t.Errorf("AttrVal(a) = %q, want %q (first occurrence wins)", got, "1")
	}
}
