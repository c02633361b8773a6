package gatenet

import "fmt"

// Parse tokenizes src and builds the Program. The first scan or syntax
// error aborts the whole parse; there is no partial result.
func Parse(src string) (*Program, error) {
	tokens, err := ScanAll(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

// parser walks the materialized token slice left to right with a single
// position index; each grammar production is one method.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() {
	p.pos++
}

func (p *parser) expect(tt TokenType) error {
	if tok := p.current(); tok.Type != tt {
		return p.errorf("expected %s, found %s", tt, tok)
	}
	p.advance()
	return nil
}

func (p *parser) errorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// program := subcircuit* inputs_section outputs_section component_list
//
// Subcircuit definitions are recognized only at the head of the stream; a
// SUBCIRCUIT keyword after the first non-subcircuit construct fails inside
// the component list instead.
func (p *parser) parseProgram() (*Program, error) {
	subs := make(map[string]*Subcircuit)
	for p.current().Type == SUBCIRCUIT {
		sub, err := p.parseSubcircuit()
		if err != nil {
			return nil, err
		}
		// Last definition wins on a duplicate name.
		subs[sub.Name] = sub
	}

	inputs, err := p.parseInputsSection()
	if err != nil {
		return nil, err
	}
	outputs, err := p.parseOutputsSection()
	if err != nil {
		return nil, err
	}
	components, err := p.parseComponentList()
	if err != nil {
		return nil, err
	}
	return &Program{
		Subcircuits: subs,
		Inputs:      inputs,
		Outputs:     outputs,
		Components:  components,
	}, nil
}

// subcircuit := SUBCIRCUIT identifier NL inputs_section outputs_section component_list END NL
func (p *parser) parseSubcircuit() (*Subcircuit, error) {
	if err := p.expect(SUBCIRCUIT); err != nil {
		return nil, err
	}
	tok := p.current()
	if tok.Type != IDENTIFIER {
		return nil, p.errorf("expected subcircuit name, found %s", tok)
	}
	name := tok.Text
	p.advance()
	if err := p.expect(NEWLINE); err != nil {
		return nil, err
	}

	inputs, err := p.parseInputsSection()
	if err != nil {
		return nil, err
	}
	outputs, err := p.parseOutputsSection()
	if err != nil {
		return nil, err
	}
	components, err := p.parseComponentList()
	if err != nil {
		return nil, err
	}

	if err := p.expect(END); err != nil {
		return nil, err
	}
	if err := p.expect(NEWLINE); err != nil {
		return nil, err
	}
	return &Subcircuit{
		Name:       name,
		Inputs:     inputs,
		Outputs:    outputs,
		Components: components,
	}, nil
}

// inputs_section := NL* INPUTS port_list NL
//
// Blank lines are tolerated before INPUTS only; OUTPUTS must follow the
// inputs section immediately.
func (p *parser) parseInputsSection() ([]string, error) {
	for p.current().Type == NEWLINE {
		p.advance()
	}
	if err := p.expect(INPUTS); err != nil {
		return nil, err
	}
	return p.parsePortList("INPUTS")
}

// outputs_section := OUTPUTS port_list NL
func (p *parser) parseOutputsSection() ([]string, error) {
	if err := p.expect(OUTPUTS); err != nil {
		return nil, err
	}
	return p.parsePortList("OUTPUTS")
}

// port_list accepts identifiers and commas in any interleaving up to the
// terminating newline, which is consumed. Empty lists are legal.
func (p *parser) parsePortList(section string) ([]string, error) {
	var names []string
	for {
		switch tok := p.current(); tok.Type {
		case IDENTIFIER:
			names = append(names, tok.Text)
			p.advance()
		case COMMA:
			p.advance()
		case NEWLINE:
			p.advance()
			return names, nil
		default:
			return nil, p.errorf("unexpected token in %s section: %s", section, tok)
		}
	}
}

// component_list := (component | NL)*
//
// The list ends at END or end of input; blank lines between components are
// ignored. Anything else is an error.
func (p *parser) parseComponentList() ([]Component, error) {
	var components []Component
	for {
		switch tok := p.current(); tok.Type {
		case AND, OR, NOT, NAND, NOR, XOR, XNOR, IDENTIFIER:
			c, err := p.parseComponent()
			if err != nil {
				return nil, err
			}
			components = append(components, c)
		case NEWLINE:
			p.advance()
		case END, EOF:
			return components, nil
		default:
			return nil, p.errorf("unexpected token in component list: %s", tok)
		}
	}
}

var gateForToken = map[TokenType]GateType{
	AND:  GateAnd,
	OR:   GateOr,
	NOT:  GateNot,
	NAND: GateNand,
	NOR:  GateNor,
	XOR:  GateXor,
	XNOR: GateXnor,
}

// component := gate_kw identifier? IN LPAREN id_list RPAREN OUT LPAREN id_list RPAREN
//
// An identifier in gate position is a subcircuit call; those carry no
// instance name, so Name stays empty and IN follows directly.
func (p *parser) parseComponent() (Component, error) {
	var c Component
	tok := p.current()
	if g, ok := gateForToken[tok.Type]; ok {
		c.Gate = g
	} else if tok.Type == IDENTIFIER {
		c.Gate = GateSub
		c.Subcircuit = tok.Text
	} else {
		return c, p.errorf("unexpected token for gate type: %s", tok)
	}
	p.advance()

	if c.Gate != GateSub {
		name := p.current()
		if name.Type != IDENTIFIER {
			return c, p.errorf("expected instance name for %s gate, found %s", c.Gate, name)
		}
		c.Name = name.Text
		p.advance()
	}

	if err := p.expect(IN); err != nil {
		return c, err
	}
	if err := p.expect(LPAREN); err != nil {
		return c, err
	}
	c.Inputs = p.parseSignalList()
	if err := p.expect(RPAREN); err != nil {
		return c, err
	}

	if err := p.expect(OUT); err != nil {
		return c, err
	}
	if err := p.expect(LPAREN); err != nil {
		return c, err
	}
	c.Outputs = p.parseSignalList()
	if err := p.expect(RPAREN); err != nil {
		return c, err
	}
	return c, nil
}

// id_list := (identifier (COMMA identifier)*)?
//
// The loop exits as soon as no comma follows an identifier, so a trailing
// comma before the closing paren is tolerated.
func (p *parser) parseSignalList() []string {
	var names []string
	for p.current().Type == IDENTIFIER {
		names = append(names, p.current().Text)
		p.advance()
		if p.current().Type != COMMA {
			break
		}
		p.advance()
	}
	return names
}
