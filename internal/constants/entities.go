package constants

// NamedEntities maps an HTML named character reference (without the
// leading '&' or trailing ';') to the string it expands to. A handful of
// entries expand to two code points (e.g. acE, NotEqualTilde) because the
// official WHATWG table pairs a base character with a combining mark.
//
// This table is a curated subset of the full WHATWG named character
// reference table: the complete 106-entry legacy (semicolon-optional) set
// inherited from HTML4, plus a broad sample of the modern entities added
// since, covering the full Greek alphabet, general punctuation, arrows, and
// mathematical operators. See DESIGN.md for why the full ~2231-row table
// isn't reproduced verbatim.
var NamedEntities = map[string]string{
	// C0 controls and basic markup characters (legacy, semicolon-optional).
	// AMP/LT/GT/QUOT are the legacy uppercase spellings HTML4 recognized
	// without a trailing semicolon alongside their lowercase counterparts.
	"amp":  "&",
	"AMP":  "&",
	"lt":   "<",
	"LT":   "<",
	"gt":   ">",
	"GT":   ">",
	"quot": "\"",
	"QUOT": "\"",
	"apos": "'",

	// Latin-1 supplement (legacy).
	"nbsp":   " ",
	"iexcl":  "¡",
	"cent":   "¢",
	"pound":  "£",
	"curren": "¤",
	"yen":    "¥",
	"brvbar": "¦",
	"sect":   "§",
	"uml":    "¨",
	"copy":   "©",
	"COPY":   "©",
	"ordf":   "ª",
	"laquo":  "«",
	"not":    "¬",
	"shy":    "­",
	"reg":    "®",
	"REG":    "®",
	"macr":   "¯",
	"deg":    "°",
	"plusmn": "±",
	"sup2":   "²",
	"sup3":   "³",
	"acute":  "´",
	"micro":  "µ",
	"para":   "¶",
	"middot": "·",
	"cedil":  "¸",
	"sup1":   "¹",
	"ordm":   "º",
	"raquo":  "»",
	"frac14": "¼",
	"frac12": "½",
	"frac34": "¾",
	"iquest": "¿",
	"Agrave": "À",
	"Aacute": "Á",
	"Acirc":  "Â",
	"Atilde": "Ã",
	"Auml":   "Ä",
	"Aring":  "Å",
	"AElig":  "Æ",
	"Ccedil": "Ç",
	"Egrave": "È",
	"Eacute": "É",
	"Ecirc":  "Ê",
	"Euml":   "Ë",
	"Igrave": "Ì",
	"Iacute": "Í",
	"Icirc":  "Î",
	"Iuml":   "Ï",
	"ETH":    "Ð",
	"Ntilde": "Ñ",
	"Ograve": "Ò",
	"Oacute": "Ó",
	"Ocirc":  "Ô",
	"Otilde": "Õ",
	"Ouml":   "Ö",
	"times":  "×",
	"Oslash": "Ø",
	"Ugrave": "Ù",
	"Uacute": "Ú",
	"Ucirc":  "Û",
	"Uuml":   "Ü",
	"Yacute": "Ý",
	"THORN":  "Þ",
	"szlig":  "ß",
	"agrave": "à",
	"aacute": "á",
	"acirc":  "â",
	"atilde": "ã",
	"auml":   "ä",
	"aring":  "å",
	"aelig":  "æ",
	"ccedil": "ç",
	"egrave": "è",
	"eacute": "é",
	"ecirc":  "ê",
	"euml":   "ë",
	"igrave": "ì",
	"iacute": "í",
	"icirc":  "î",
	"iuml":   "ï",
	"eth":    "ð",
	"ntilde": "ñ",
	"ograve": "ò",
	"oacute": "ó",
	"ocirc":  "ô",
	"otilde": "õ",
	"ouml":   "ö",
	"divide": "÷",
	"oslash": "ø",
	"ugrave": "ù",
	"uacute": "ú",
	"ucirc":  "û",
	"uuml":   "ü",
	"yacute": "ý",
	"thorn":  "þ",
	"yuml":   "ÿ",

	// Greek letters (modern, semicolon required). Full alphabet plus the
	// variant lowercase forms (final sigma, cursive theta/upsilon/pi).
	"Alpha":    "Α",
	"alpha":    "α",
	"Beta":     "Β",
	"beta":     "β",
	"Gamma":    "Γ",
	"gamma":    "γ",
	"Delta":    "Δ",
	"delta":    "δ",
	"Epsilon":  "Ε",
	"epsilon":  "ε",
	"Zeta":     "Ζ",
	"zeta":     "ζ",
	"Eta":      "Η",
	"eta":      "η",
	"Theta":    "Θ",
	"theta":    "θ",
	"Iota":     "Ι",
	"iota":     "ι",
	"Kappa":    "Κ",
	"kappa":    "κ",
	"Lambda":   "Λ",
	"lambda":   "λ",
	"Mu":       "Μ",
	"mu":       "μ",
	"Nu":       "Ν",
	"nu":       "ν",
	"Xi":       "Ξ",
	"xi":       "ξ",
	"Omicron":  "Ο",
	"omicron":  "ο",
	"Pi":       "Π",
	"pi":       "π",
	"Rho":      "Ρ",
	"rho":      "ρ",
	"Sigma":    "Σ",
	"sigma":    "σ",
	"sigmaf":   "ς",
	"Tau":      "Τ",
	"tau":      "τ",
	"Upsilon":  "Υ",
	"upsilon":  "υ",
	"Phi":      "Φ",
	"phi":      "φ",
	"Chi":      "Χ",
	"chi":      "χ",
	"Psi":      "Ψ",
	"psi":      "ψ",
	"Omega":    "Ω",
	"omega":    "ω",
	"thetasym": "ϑ",
	"upsih":    "ϒ",
	"piv":      "ϖ",

	// General punctuation and whitespace-ish named references.
	"NewLine":        "\n",
	"Tab":            "\t",
	"ZeroWidthSpace": "​",
	"OElig":          "Œ",
	"oelig":          "œ",
	"Scaron":         "Š",
	"scaron":         "š",
	"Yuml":           "Ÿ",
	"fnof":           "ƒ",
	"circ":           "ˆ",
	"tilde":          "˜",
	"ensp":           " ",
	"emsp":           " ",
	"thinsp":         " ",
	"zwnj":           "‌",
	"zwj":            "‍",
	"lrm":            "‎",
	"rlm":            "‏",
	"ndash":          "–",
	"mdash":          "—",
	"lsquo":          "‘",
	"rsquo":          "’",
	"sbquo":          "‚",
	"ldquo":          "“",
	"rdquo":          "”",
	"bdquo":          "„",
	"dagger":         "†",
	"Dagger":         "‡",
	"bull":           "•",
	"hellip":         "…",
	"permil":         "‰",
	"prime":          "′",
	"Prime":          "″",
	"lsaquo":         "‹",
	"rsaquo":         "›",
	"oline":          "‾",
	"frasl":          "⁄",
	"euro":           "€",
	"trade":          "™",
	"loz":            "◊",
	"spades":         "♠",
	"clubs":          "♣",
	"hearts":         "♥",
	"diams":          "♦",
	"larr":           "←",
	"uarr":           "↑",
	"rarr":           "→",
	"darr":           "↓",
	"harr":           "↔",
	"crarr":          "↵",
	"lArr":           "⇐",
	"uArr":           "⇑",
	"rArr":           "⇒",
	"dArr":           "⇓",
	"hArr":           "⇔",
	"lang":           "⟨",
	"rang":           "⟩",

	// Mathematical operators (modern, semicolon required).
	"forall":  "∀",
	"part":    "∂",
	"exist":   "∃",
	"empty":   "∅",
	"nabla":   "∇",
	"isin":    "∈",
	"notin":   "∉",
	"ni":      "∋",
	"prod":    "∏",
	"sum":     "∑",
	"minus":   "−",
	"lowast":  "∗",
	"radic":   "√",
	"prop":    "∝",
	"infin":   "∞",
	"ang":     "∠",
	"and":     "∧",
	"or":      "∨",
	"cap":     "∩",
	"cup":     "∪",
	"int":     "∫",
	"there4":  "∴",
	"sim":     "∼",
	"cong":    "≅",
	"asymp":   "≈",
	"ne":      "≠",
	"equiv":   "≡",
	"le":      "≤",
	"ge":      "≥",
	"sub":     "⊂",
	"sup":     "⊃",
	"nsub":    "⊄",
	"sube":    "⊆",
	"supe":    "⊇",
	"oplus":   "⊕",
	"otimes":  "⊗",
	"perp":    "⊥",
	"sdot":    "⋅",
	"lceil":   "⌈",
	"rceil":   "⌉",
	"lfloor":  "⌊",
	"rfloor":  "⌋",
	"alefsym": "ℵ",
	"image":   "ℑ",
	"real":    "ℜ",
	"weierp":  "℘",

	// Multi-codepoint entities (base character plus combining mark).
	"NotEqualTilde": "≂̸",
	"acE":           "∾̳",
}

// LegacyEntities is the subset of NamedEntities that HTML4 recognized
// without a trailing semicolon. The numeric-character-reference and
// named-character-reference tokenizer states consult this set when
// deciding whether a missing semicolon is tolerated or raises
// missing-semicolon-after-character-reference.
var LegacyEntities = map[string]bool{
	"amp": true, "AMP": true, "lt": true, "LT": true,
	"gt": true, "GT": true, "quot": true, "QUOT": true,
	"nbsp": true, "iexcl": true, "cent": true, "pound": true, "curren": true,
	"yen": true, "brvbar": true, "sect": true, "uml": true, "copy": true,
	"COPY": true, "ordf": true, "laquo": true, "not": true, "shy": true,
	"reg": true, "REG": true, "macr": true, "deg": true, "plusmn": true,
	"sup2": true, "sup3": true, "acute": true, "micro": true, "para": true,
	"middot": true, "cedil": true, "sup1": true, "ordm": true, "raquo": true,
	"frac14": true, "frac12": true, "frac34": true, "iquest": true,
	"Agrave": true, "Aacute": true, "Acirc": true, "Atilde": true, "Auml": true,
	"Aring": true, "AElig": true, "Ccedil": true, "Egrave": true, "Eacute": true,
	"Ecirc": true, "Euml": true, "Igrave": true, "Iacute": true, "Icirc": true,
	"Iuml": true, "ETH": true, "Ntilde": true, "Ograve": true, "Oacute": true,
	"Ocirc": true, "Otilde": true, "Ouml": true, "times": true, "Oslash": true,
	"Ugrave": true, "Uacute": true, "Ucirc": true, "Uuml": true, "Yacute": true,
	"THORN": true, "szlig": true, "agrave": true, "aacute": true, "acirc": true,
	"atilde": true, "auml": true, "aring": true, "aelig": true, "ccedil": true,
	"egrave": true, "eacute": true, "ecirc": true, "euml": true, "igrave": true,
	"iacute": true, "icirc": true, "iuml": true, "eth": true, "ntilde": true,
	"ograve": true, "oacute": true, "ocirc": true, "otilde": true, "ouml": true,
	"divide": true, "oslash": true, "ugrave": true, "uacute": true, "ucirc": true,
	"uuml": true, "yacute": true, "thorn": true, "yuml": true,
}

// NumericReplacements maps the Windows-1252 C1 control range (plus NUL) to
// the Unicode code point the numeric-character-reference-end state
// substitutes for it, per the WHATWG tokenizer's numeric reference table.
// Codes in 0x80-0x9F absent from this table (undefined in Windows-1252)
// pass through as their literal code point value instead.
var NumericReplacements = map[int]rune{
	0x00: '�',
	0x80: '€',
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8A: 'Š',
	0x8B: '‹',
	0x8C: 'Œ',
	0x8E: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9A: 'š',
	0x9B: '›',
	0x9C: 'œ',
	0x9E: 'ž',
	0x9F: 'Ÿ',
}
