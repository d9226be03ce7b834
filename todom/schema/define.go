package schema

import "strings"

type definition struct {
	transform       func(attributes map[string]string, property string) string
	attributes      map[string]string
	mustUseProperty []string
	properties      map[string]Flag
}

func caseSensitiveTransform(attributes map[string]string, attribute string) string {
	if a, ok := attributes[attribute]; ok {
		return a
	}
	return attribute
}

func caseInsensitiveTransform(attributes map[string]string, property string) string {
	return caseSensitiveTransform(attributes, strings.ToLower(property))
}

func prefixTransform(prefix string, strip int) func(map[string]string, string) string {
	return func(_ map[string]string, property string) string {
		return prefix + strings.ToLower(property[strip:])
	}
}

var xmlDef = definition{
	transform: prefixTransform("xml:", 3),
	properties: map[string]Flag{
		"xmlBase":  0,
		"xmlLang":  0,
		"xmlSpace": 0,
	},
}

var xlinkDef = definition{
	transform: prefixTransform("xlink:", 5),
	properties: map[string]Flag{
		"xLinkActuate": 0,
		"xLinkArcRole": 0,
		"xLinkHref":    0,
		"xLinkRole":    0,
		"xLinkShow":    0,
		"xLinkTitle":   0,
		"xLinkType":    0,
	},
}

var xmlnsDef = definition{
	transform:  caseInsensitiveTransform,
	attributes: map[string]string{"xmlnsxlink": "xmlns:xlink"},
	properties: map[string]Flag{
		"xmlnsXLink": 0,
		"xmlns":      0,
	},
}

var ariaDef = definition{
	transform: func(_ map[string]string, property string) string {
		if property == "role" {
			return property
		}
		return "aria-" + strings.ToLower(property[4:])
	},
	properties: map[string]Flag{
		"ariaActiveDescendant": 0,
		"ariaAtomic":           Booleanish,
		"ariaAutoComplete":     0,
		"ariaBusy":             Booleanish,
		"ariaChecked":          Booleanish,
		"ariaColCount":         Number,
		"ariaColIndex":         Number,
		"ariaColSpan":          Number,
		"ariaControls":         SpaceSeparated,
		"ariaCurrent":          0,
		"ariaDescribedBy":      SpaceSeparated,
		"ariaDetails":          0,
		"ariaDisabled":         Booleanish,
		"ariaDropEffect":       SpaceSeparated,
		"ariaErrorMessage":     0,
		"ariaExpanded":         Booleanish,
		"ariaFlowTo":           SpaceSeparated,
		"ariaGrabbed":          Booleanish,
		"ariaHasPopup":         0,
		"ariaHidden":           Booleanish,
		"ariaInvalid":          0,
		"ariaKeyShortcuts":     0,
		"ariaLabel":            0,
		"ariaLabelledBy":       SpaceSeparated,
		"ariaLevel":            Number,
		"ariaLive":             0,
		"ariaModal":            Booleanish,
		"ariaMultiLine":        Booleanish,
		"ariaMultiSelectable":  Booleanish,
		"ariaOrientation":      0,
		"ariaOwns":             SpaceSeparated,
		"ariaPlaceholder":      0,
		"ariaPosInSet":         Number,
		"ariaPressed":          Booleanish,
		"ariaReadOnly":         Booleanish,
		"ariaRelevant":         0,
		"ariaRequired":         Booleanish,
		"ariaRoleDescription":  SpaceSeparated,
		"ariaRowCount":         Number,
		"ariaRowIndex":         Number,
		"ariaRowSpan":          Number,
		"ariaSelected":         Booleanish,
		"ariaSetSize":          Number,
		"ariaSort":             0,
		"ariaValueMax":         Number,
		"ariaValueMin":         Number,
		"ariaValueNow":         Number,
		"ariaValueText":        0,
		"role":                 0,
	},
}

// eventHandlers are the on* properties shared by HTML and SVG. Their
// attribute is the lowercased property.
var eventHandlers = []string{
	"onAbort", "onAfterPrint", "onAuxClick", "onBeforeMatch", "onBeforePrint",
	"onBeforeToggle", "onBeforeUnload", "onBlur", "onCancel", "onCanPlay",
	"onCanPlayThrough", "onChange", "onClick", "onClose", "onContextLost",
	"onContextMenu", "onContextRestored", "onCopy", "onCueChange", "onCut",
	"onDblClick", "onDrag", "onDragEnd", "onDragEnter", "onDragExit",
	"onDragLeave", "onDragOver", "onDragStart", "onDrop", "onDurationChange",
	"onEmptied", "onEnded", "onError", "onFocus", "onFormData",
	"onHashChange", "onInput", "onInvalid", "onKeyDown", "onKeyPress",
	"onKeyUp", "onLanguageChange", "onLoad", "onLoadedData",
	"onLoadedMetadata", "onLoadEnd", "onLoadStart", "onMessage",
	"onMessageError", "onMouseDown", "onMouseEnter", "onMouseLeave",
	"onMouseMove", "onMouseOut", "onMouseOver", "onMouseUp", "onOffline",
	"onOnline", "onPageHide", "onPageShow", "onPaste", "onPause", "onPlay",
	"onPlaying", "onPopState", "onProgress", "onRateChange",
	"onRejectionHandled", "onReset", "onResize", "onScroll", "onScrollEnd",
	"onSecurityPolicyViolation", "onSeeked", "onSeeking", "onSelect",
	"onSlotChange", "onStalled", "onStorage", "onSubmit", "onSuspend",
	"onTimeUpdate", "onToggle", "onUnhandledRejection", "onUnload",
	"onVolumeChange", "onWaiting", "onWheel",
}

func withEventHandlers(props map[string]Flag) map[string]Flag {
	for _, name := range eventHandlers {
		props[name] = 0
	}
	return props
}
