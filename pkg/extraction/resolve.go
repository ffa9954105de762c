// Package extraction lee valores de los árboles JSON que produce el servicio
// de extracción de documentos (OCR + LLM).
//
// Casi todas las hojas llegan envueltas en un sobre {value, confidence, ...};
// Resolve recorre una ruta con puntos y desenvuelve ese sobre, de modo que el
// resto del código nunca inspecciona mapas anidados a mano.
package extraction

import (
	"strconv"
	"strings"
)

// envelopeKey es la propiedad que contiene el valor real dentro del sobre.
const envelopeKey = "value"

// Resolve recorre root siguiendo path ("a.b.c") y devuelve el valor final.
//
// Devuelve (nil, false) si algún tramo falta o no es un contenedor, o si el
// valor final es nulo. Los mapas se recorren por clave y los arrays por índice
// numérico. Si el valor final es un objeto con la propiedad "value", se
// devuelve ese valor interno (un solo nivel).
func Resolve(root any, path string) (any, bool) {
	if root == nil {
		return nil, false
	}
	current := root
	if path != "" {
		for _, key := range strings.Split(path, ".") {
			next, ok := child(current, key)
			if !ok {
				return nil, false
			}
			current = next
		}
	}
	if m, ok := current.(map[string]any); ok {
		if inner, has := m[envelopeKey]; has {
			current = inner
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

func child(node any, key string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[key]
		return v, ok
	case []any:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(n) {
			return nil, false
		}
		return n[idx], true
	default:
		return nil, false
	}
}
