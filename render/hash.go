package render

// NameHash maps an agent name to a stable non-negative sprite index:
// h = h*31 + ch per character, truncated to int32, absolute value
func NameHash(name string) int {
	var h int32
	for _, r := range name {
		h = (h << 5) - h + int32(r)
	}
	if h < 0 {
		h = -h
	}
	return int(h)
}

// glyphPool is the avatar glyph palette indexed by NameHash
var glyphPool = []rune{
	'Ω', 'Ψ', 'Φ', 'Σ', 'Δ', 'Λ', 'Π', 'Ξ',
	'Θ', 'Γ', 'æ', 'ø', 'å', 'ß', 'ð', 'þ',
	'µ', 'ñ', 'ç', 'š',
}

// AvatarGlyph picks a deterministic glyph for an agent name
func AvatarGlyph(name string) rune {
	return glyphPool[NameHash(name)%len(glyphPool)]
}
