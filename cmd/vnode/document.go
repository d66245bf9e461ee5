package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pthm/vnode"
)

// Document is the input of the render command.
//
//	components:
//	  card:
//	    props:
//	      tag: div
//	      attrs: {class: card}
//	    class: [shadow]
//	tree:
//	  - card
//	  - {attrs: {id: intro}}
//	  - Hello
type Document struct {
	Components map[string]ComponentDef `yaml:"components"`
	Tree       any                     `yaml:"tree"`
}

// ComponentDef declares a component: default props plus classes added to
// the element it renders.
type ComponentDef struct {
	Props map[string]any `yaml:"props"`
	Class []string       `yaml:"class"`
}

// readDocument decodes a YAML document. JSON input works too, being
// valid YAML.
func readDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &doc, nil
}

// register adds the document's components to reg.
func (d *Document) register(reg *vnode.Registry) {
	for name, def := range d.Components {
		var render vnode.RenderCallback
		if len(def.Class) > 0 {
			classes := def.Class
			render = func(node vnode.Container, props vnode.Props, c *vnode.Context) (vnode.Node, error) {
				if tag, ok := node.(*vnode.TagNode); ok {
					tag.AddClass(classes...)
				}
				return nil, nil
			}
		}
		reg.CreateComponent(name, vnode.Component{Props: def.Props, Render: render})
	}
}
