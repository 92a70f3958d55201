//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/roughcut/roughcut/backend-go/internal/document"
	"github.com/roughcut/roughcut/backend-go/internal/editor"
)

var (
	session        *editor.Session
	changeCallback func(document.CanvasState)
)

func main() {
	session = editor.NewSession()

	// Create the editor API object
	roughcutEditor := js.Global().Get("Object").New()

	// --- Pointer and touch gestures ---
	roughcutEditor.Set("pointerDown", js.FuncOf(pointerDown))
	roughcutEditor.Set("pointerMove", js.FuncOf(pointerMove))
	roughcutEditor.Set("pointerUp", js.FuncOf(pointerUp))
	roughcutEditor.Set("wheel", js.FuncOf(wheel))
	roughcutEditor.Set("touchStart", js.FuncOf(touchStart))
	roughcutEditor.Set("touchMove", js.FuncOf(touchMove))
	roughcutEditor.Set("touchEnd", js.FuncOf(touchEnd))

	// --- Selection handle gestures ---
	roughcutEditor.Set("startResize", js.FuncOf(startResize))
	roughcutEditor.Set("resizeMove", js.FuncOf(resizeMove))
	roughcutEditor.Set("endResize", js.FuncOf(endResize))
	roughcutEditor.Set("startRotate", js.FuncOf(startRotate))
	roughcutEditor.Set("rotateMove", js.FuncOf(rotateMove))
	roughcutEditor.Set("endRotate", js.FuncOf(endRotate))

	// --- Text editing ---
	roughcutEditor.Set("confirmText", js.FuncOf(confirmText))
	roughcutEditor.Set("cancelText", js.FuncOf(cancelText))

	// --- Tool and style settings ---
	roughcutEditor.Set("setTool", js.FuncOf(setTool))
	roughcutEditor.Set("setStrokeColor", js.FuncOf(setStrokeColor))
	roughcutEditor.Set("setFillColor", js.FuncOf(setFillColor))
	roughcutEditor.Set("setStrokeWidth", js.FuncOf(setStrokeWidth))
	roughcutEditor.Set("setRoughness", js.FuncOf(setRoughness))
	roughcutEditor.Set("setFontSize", js.FuncOf(setFontSize))
	roughcutEditor.Set("setFontFamily", js.FuncOf(setFontFamily))

	// --- History and shape commands ---
	roughcutEditor.Set("undo", js.FuncOf(undo))
	roughcutEditor.Set("redo", js.FuncOf(redo))
	roughcutEditor.Set("deleteSelected", js.FuncOf(deleteSelected))
	roughcutEditor.Set("duplicateSelected", js.FuncOf(duplicateSelected))
	roughcutEditor.Set("clearCanvas", js.FuncOf(clearCanvas))
	roughcutEditor.Set("bringForward", js.FuncOf(bringForward))
	roughcutEditor.Set("sendBackward", js.FuncOf(sendBackward))

	// --- Viewport commands ---
	roughcutEditor.Set("zoomBy", js.FuncOf(zoomBy))
	roughcutEditor.Set("resetZoom", js.FuncOf(resetZoom))

	// --- Document I/O ---
	roughcutEditor.Set("loadDocument", js.FuncOf(loadDocument))
	roughcutEditor.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	roughcutEditor.Set("getDocument", js.FuncOf(getDocument))

	// --- Queries (frontend ← backend) ---
	roughcutEditor.Set("getShapes", js.FuncOf(getShapes))
	roughcutEditor.Set("getState", js.FuncOf(getState))
	roughcutEditor.Set("canUndo", js.FuncOf(canUndo))
	roughcutEditor.Set("canRedo", js.FuncOf(canRedo))

	// --- Change notification ---
	roughcutEditor.Set("onChange", js.FuncOf(onChange))

	// Register on global scope
	js.Global().Set("roughcutEditor", roughcutEditor)

	// Signal that WASM is ready
	js.Global().Set("roughcutWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Pointer and Touch Handlers ---

func pointerDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	secondary := len(args) > 2 && args[2].Bool()
	session.PointerDown(args[0].Float(), args[1].Float(), secondary)
	return nil
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	session.PointerMove(args[0].Float(), args[1].Float())
	return nil
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	session.PointerUp()
	return nil
}

func wheel(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return nil
	}
	zoomModifier := len(args) > 4 && args[4].Bool()
	session.Wheel(args[0].Float(), args[1].Float(), args[2].Float(), args[3].Float(), zoomModifier)
	return nil
}

func touchStart(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return nil
	}
	session.TouchStart(args[0].Float(), args[1].Float(), args[2].Float(), args[3].Float())
	return nil
}

func touchMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return nil
	}
	session.TouchMove(args[0].Float(), args[1].Float(), args[2].Float(), args[3].Float())
	return nil
}

func touchEnd(this js.Value, args []js.Value) interface{} {
	session.TouchEnd()
	return nil
}

// --- Handle Gesture Handlers ---

var handleNames = map[string]editor.Handle{
	"nw": editor.HandleNW,
	"n":  editor.HandleN,
	"ne": editor.HandleNE,
	"e":  editor.HandleE,
	"se": editor.HandleSE,
	"s":  editor.HandleS,
	"sw": editor.HandleSW,
	"w":  editor.HandleW,
}

func startResize(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	handle, ok := handleNames[args[0].String()]
	if !ok {
		return js.ValueOf(map[string]interface{}{"error": "unknown handle"})
	}
	session.StartResize(handle, args[1].Float(), args[2].Float())
	return nil
}

func resizeMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	session.ResizeMove(args[0].Float(), args[1].Float())
	return nil
}

func endResize(this js.Value, args []js.Value) interface{} {
	session.EndResize()
	return nil
}

func startRotate(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	y := 0.0
	if len(args) > 1 {
		y = args[1].Float()
	}
	session.StartRotate(args[0].Float(), y)
	return nil
}

func rotateMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	y := 0.0
	if len(args) > 1 {
		y = args[1].Float()
	}
	session.RotateMove(args[0].Float(), y)
	return nil
}

func endRotate(this js.Value, args []js.Value) interface{} {
	session.EndRotate()
	return nil
}

// --- Text Handlers ---

func confirmText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	session.ConfirmText(args[0].String())
	return nil
}

func cancelText(this js.Value, args []js.Value) interface{} {
	session.CancelText()
	return nil
}

// --- Setting Handlers ---

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	session.SetTool(document.Tool(args[0].String()))
	return nil
}

func setStrokeColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	session.SetStrokeColor(args[0].String())
	return nil
}

func setFillColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	session.SetFillColor(args[0].String())
	return nil
}

func setStrokeWidth(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	session.SetStrokeWidth(args[0].Float())
	return nil
}

func setRoughness(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	session.SetRoughness(args[0].Float())
	return nil
}

func setFontSize(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	session.SetFontSize(args[0].Float())
	return nil
}

func setFontFamily(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	session.SetFontFamily(args[0].String())
	return nil
}

// --- Command Handlers ---

func undo(this js.Value, args []js.Value) interface{} {
	session.Undo()
	return nil
}

func redo(this js.Value, args []js.Value) interface{} {
	session.Redo()
	return nil
}

func deleteSelected(this js.Value, args []js.Value) interface{} {
	session.DeleteSelected()
	return nil
}

func duplicateSelected(this js.Value, args []js.Value) interface{} {
	session.DuplicateSelected()
	return nil
}

func clearCanvas(this js.Value, args []js.Value) interface{} {
	session.ClearCanvas()
	return nil
}

func bringForward(this js.Value, args []js.Value) interface{} {
	session.BringForward()
	return nil
}

func sendBackward(this js.Value, args []js.Value) interface{} {
	session.SendBackward()
	return nil
}

func zoomBy(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	session.ZoomBy(args[0].Float(), args[1].Float(), args[2].Float())
	return nil
}

func resetZoom(this js.Value, args []js.Value) interface{} {
	session.ResetZoom()
	return nil
}

// --- Document I/O Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}

	if err := session.Import([]byte(args[0].String())); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	session = editor.NewSessionFrom(document.NewSampleCanvas())
	if changeCallback != nil {
		session.SetOnChange(changeCallback)
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func getDocument(this js.Value, args []js.Value) interface{} {
	data, err := session.Export()
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

// --- Query Handlers ---

func getShapes(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(session.Shapes())
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}

func getState(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(session.State())
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

func canUndo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(session.CanUndo())
}

func canRedo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(session.CanRedo())
}

// --- Change Notification ---

// onChange registers a JS callback invoked with the serialized state
// after every mutation. The frontend uses it to schedule a repaint.
func onChange(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return nil
	}

	callback := args[0]
	changeCallback = func(state document.CanvasState) {
		data, err := json.Marshal(state)
		if err != nil {
			return
		}
		callback.Invoke(string(data))
	}
	session.SetOnChange(changeCallback)
	return nil
}
