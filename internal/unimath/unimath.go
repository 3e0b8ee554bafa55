// Package unimath 将 LaTeX 公式近似转换为 Unicode 纯文本
//
// 用于纯文本预览（缩略图、备注、搜索索引），不追求排版正确：
// 未知命令原样保留，转换从不失败。
package unimath

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Convert 将 LaTeX 源码转换为 Unicode 近似表示
func Convert(tex string) string {
	c := &converter{src: tex}
	return strings.TrimSpace(c.sequence(false))
}

// converter 递归下降：sequence 解析到结尾或匹配的 '}'
type converter struct {
	src string
	pos int
}

func (c *converter) sequence(inGroup bool) string {
	var out strings.Builder
	for c.pos < len(c.src) {
		ch := c.src[c.pos]
		switch ch {
		case '\\':
			c.pos++
			out.WriteString(c.command(c.controlName()))
		case '{':
			c.pos++
			out.WriteString(c.sequence(true))
		case '}':
			c.pos++
			if inGroup {
				return out.String()
			}
			// 多余的 '}'，忽略
		case '^', '_':
			c.pos++
			out.WriteString(script(ch, c.argument()))
		case '&':
			c.pos++
			out.WriteByte(' ')
		case '~':
			c.pos++
			out.WriteByte(' ')
		default:
			r, size := utf8.DecodeRuneInString(c.src[c.pos:])
			c.pos += size
			out.WriteRune(r)
		}
	}
	return out.String()
}

// controlName 读取 '\' 之后的命令名：字母串或单个字符
func (c *converter) controlName() string {
	start := c.pos
	for c.pos < len(c.src) && isLetter(c.src[c.pos]) {
		c.pos++
	}
	if c.pos > start {
		return c.src[start:c.pos]
	}
	if c.pos >= len(c.src) {
		return ""
	}
	_, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += size
	return c.src[start:c.pos]
}

// argument 读取一个参数：{...} 分组、命令或单个字符
func (c *converter) argument() string {
	c.skipSpaces()
	if c.pos >= len(c.src) {
		return ""
	}
	switch c.src[c.pos] {
	case '{':
		c.pos++
		return c.sequence(true)
	case '\\':
		c.pos++
		return c.command(c.controlName())
	}
	r, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += size
	return string(r)
}

// optional 读取可选参数 [...]，不存在时返回 false
func (c *converter) optional() (string, bool) {
	c.skipSpaces()
	if c.pos >= len(c.src) || c.src[c.pos] != '[' {
		return "", false
	}
	end := strings.IndexByte(c.src[c.pos:], ']')
	if end < 0 {
		return "", false
	}
	inner := &converter{src: c.src[c.pos+1 : c.pos+end]}
	c.pos += end + 1
	return inner.sequence(false), true
}

func (c *converter) skipSpaces() {
	for c.pos < len(c.src) && c.src[c.pos] == ' ' {
		c.pos++
	}
}

func (c *converter) command(name string) string {
	if s, ok := symbols[name]; ok {
		return s
	}
	if s, ok := spacing[name]; ok {
		return s
	}
	switch name {
	case "":
		return ""
	case "{", "}", "$", "%", "&", "#", "_":
		return name
	case "\\":
		return "\n"
	case "frac", "dfrac", "tfrac", "cfrac":
		num := c.argument()
		den := c.argument()
		return fraction(num, den)
	case "sqrt":
		index, _ := c.optional()
		return root(index, c.argument())
	case "text", "textrm", "textit", "textbf", "mathrm", "mathit", "mathbf",
		"mathsf", "mathtt", "boldsymbol", "operatorname", "mbox":
		return c.argument()
	case "mathbb":
		return mapRunes(c.argument(), func(r rune) string {
			if s, ok := doubleStruck[r]; ok {
				return s
			}
			return string(r)
		})
	case "left", "right", "big", "Big", "bigg", "Bigg", "bigl", "bigr":
		c.skipSpaces()
		if c.pos < len(c.src) && c.src[c.pos] == '.' {
			c.pos++
		}
		return ""
	case "not":
		rel := c.argument()
		if s, ok := negated[rel]; ok {
			return s
		}
		return rel + "\u0338"
	case "begin", "end":
		c.argument() // 环境名
		return ""
	case "overline", "bar":
		return mapRunes(c.argument(), func(r rune) string { return string(r) + "\u0305" })
	case "vec":
		return c.argument() + "\u20d7"
	case "hat":
		return c.argument() + "\u0302"
	case "dot":
		return c.argument() + "\u0307"
	case "tilde":
		return c.argument() + "\u0303"
	}
	// 未知命令原样保留，参数保留花括号
	c.skipSpaces()
	if c.pos < len(c.src) && c.src[c.pos] == '{' {
		c.pos++
		return "\\" + name + "{" + c.sequence(true) + "}"
	}
	return "\\" + name
}

// script 生成上下标；所有字符都有 Unicode 上下标时直接替换
func script(kind byte, arg string) string {
	table, mark := superscripts, "^"
	if kind == '_' {
		table, mark = subscripts, "_"
	}
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range arg {
		s, ok := table[r]
		if !ok {
			if utf8.RuneCountInString(arg) == 1 {
				return mark + arg
			}
			return mark + "(" + arg + ")"
		}
		b.WriteRune(s)
	}
	return b.String()
}

func fraction(num, den string) string {
	num, den = strings.TrimSpace(num), strings.TrimSpace(den)
	if s, ok := vulgarFractions[num+"/"+den]; ok {
		return s
	}
	return parenthesize(num) + "/" + parenthesize(den)
}

func root(index, radicand string) string {
	sign := "√"
	switch strings.TrimSpace(index) {
	case "":
	case "3":
		sign = "∛"
	case "4":
		sign = "∜"
	default:
		sign = script('^', index) + "√"
	}
	return sign + parenthesize(strings.TrimSpace(radicand))
}

// parenthesize 复合表达式加括号
func parenthesize(s string) string {
	if utf8.RuneCountInString(s) <= 1 || isAtom(s) {
		return s
	}
	return "(" + s + ")"
}

// isAtom reports whether s is a single number or a single word.
func isAtom(s string) bool {
	digits, letters := true, true
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			digits = false
		}
		if !unicode.IsLetter(r) {
			letters = false
		}
	}
	return digits || letters
}

func mapRunes(s string, f func(rune) string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(f(r))
	}
	return b.String()
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
