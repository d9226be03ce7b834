package schema

var htmlDef = definition{
	transform: caseInsensitiveTransform,
	attributes: map[string]string{
		"acceptcharset": "accept-charset",
		"classname":     "class",
		"htmlfor":       "for",
		"httpequiv":     "http-equiv",
	},
	mustUseProperty: []string{"checked", "multiple", "muted", "selected"},
	properties: withEventHandlers(map[string]Flag{
		"abbr":                     0,
		"accept":                   CommaSeparated,
		"acceptCharset":            SpaceSeparated,
		"accessKey":                SpaceSeparated,
		"action":                   0,
		"allow":                    0,
		"allowFullScreen":          Boolean,
		"allowPaymentRequest":      Boolean,
		"allowUserMedia":           Boolean,
		"alt":                      0,
		"as":                       0,
		"async":                    Boolean,
		"autoCapitalize":           0,
		"autoComplete":             SpaceSeparated,
		"autoFocus":                Boolean,
		"autoPlay":                 Boolean,
		"blocking":                 SpaceSeparated,
		"capture":                  0,
		"charSet":                  0,
		"checked":                  Boolean,
		"cite":                     0,
		"className":                SpaceSeparated,
		"cols":                     Number,
		"colSpan":                  0,
		"content":                  0,
		"contentEditable":          Booleanish,
		"controls":                 Boolean,
		"controlsList":             SpaceSeparated,
		"coords":                   Number | CommaSeparated,
		"crossOrigin":              0,
		"data":                     0,
		"dateTime":                 0,
		"decoding":                 0,
		"default":                  Boolean,
		"defer":                    Boolean,
		"dir":                      0,
		"dirName":                  0,
		"disabled":                 Boolean,
		"download":                 OverloadedBoolean,
		"draggable":                Booleanish,
		"encType":                  0,
		"enterKeyHint":             0,
		"fetchPriority":            0,
		"form":                     0,
		"formAction":               0,
		"formEncType":              0,
		"formMethod":               0,
		"formNoValidate":           Boolean,
		"formTarget":               0,
		"headers":                  SpaceSeparated,
		"height":                   Number,
		"hidden":                   Boolean,
		"high":                     Number,
		"href":                     0,
		"hrefLang":                 0,
		"htmlFor":                  SpaceSeparated,
		"httpEquiv":                SpaceSeparated,
		"id":                       0,
		"imageSizes":               0,
		"imageSrcSet":              0,
		"inert":                    Boolean,
		"inputMode":                0,
		"integrity":                0,
		"is":                       0,
		"isMap":                    Boolean,
		"itemId":                   0,
		"itemProp":                 SpaceSeparated,
		"itemRef":                  SpaceSeparated,
		"itemScope":                Boolean,
		"itemType":                 SpaceSeparated,
		"kind":                     0,
		"label":                    0,
		"lang":                     0,
		"language":                 0,
		"list":                     0,
		"loading":                  0,
		"loop":                     Boolean,
		"low":                      Number,
		"manifest":                 0,
		"max":                      0,
		"maxLength":                Number,
		"media":                    0,
		"method":                   0,
		"min":                      0,
		"minLength":                Number,
		"multiple":                 Boolean,
		"muted":                    Boolean,
		"name":                     0,
		"nonce":                    0,
		"noModule":                 Boolean,
		"noValidate":               Boolean,
		"open":                     Boolean,
		"optimum":                  Number,
		"pattern":                  0,
		"ping":                     SpaceSeparated,
		"placeholder":              0,
		"playsInline":              Boolean,
		"popover":                  0,
		"popoverTarget":            0,
		"popoverTargetAction":      0,
		"poster":                   0,
		"preload":                  0,
		"readOnly":                 Boolean,
		"referrerPolicy":           0,
		"rel":                      SpaceSeparated,
		"required":                 Boolean,
		"reversed":                 Boolean,
		"rows":                     Number,
		"rowSpan":                  Number,
		"sandbox":                  SpaceSeparated,
		"scope":                    0,
		"scoped":                   Boolean,
		"seamless":                 Boolean,
		"selected":                 Boolean,
		"shadowRootClonable":       Boolean,
		"shadowRootDelegatesFocus": Boolean,
		"shadowRootMode":           0,
		"shape":                    0,
		"size":                     Number,
		"sizes":                    0,
		"slot":                     0,
		"span":                     Number,
		"spellCheck":               Booleanish,
		"src":                      0,
		"srcDoc":                   0,
		"srcLang":                  0,
		"srcSet":                   CommaSeparated,
		"start":                    Number,
		"step":                     0,
		"style":                    0,
		"tabIndex":                 Number,
		"target":                   0,
		"title":                    0,
		"translate":                0,
		"type":                     0,
		"typeMustMatch":            Boolean,
		"useMap":                   0,
		"value":                    Booleanish,
		"width":                    Number,
		"wrap":                     0,
		"writingSuggestions":       0,

		// Legacy.
		"align":        0,
		"aLink":        0,
		"archive":      SpaceSeparated,
		"axis":         0,
		"background":   0,
		"bgColor":      0,
		"border":       Number,
		"borderColor":  0,
		"bottomMargin": Number,
		"cellPadding":  0,
		"cellSpacing":  0,
		"char":         0,
		"charOff":      0,
		"classId":      0,
		"clear":        0,
		"code":         0,
		"codeBase":     0,
		"codeType":     0,
		"color":        0,
		"compact":      Boolean,
		"declare":      Boolean,
		"event":        0,
		"face":         0,
		"frame":        0,
		"frameBorder":  0,
		"hSpace":       Number,
		"leftMargin":   Number,
		"link":         0,
		"longDesc":     0,
		"lowSrc":       0,
		"marginHeight": Number,
		"marginWidth":  Number,
		"noResize":     Boolean,
		"noHref":       Boolean,
		"noShade":      Boolean,
		"noWrap":       Boolean,
		"object":       0,
		"profile":      0,
		"prompt":       0,
		"rev":          0,
		"rightMargin":  Number,
		"rules":        0,
		"scheme":       0,
		"scrolling":    Booleanish,
		"standby":      0,
		"summary":      0,
		"text":         0,
		"topMargin":    Number,
		"valueType":    0,
		"version":      0,
		"vAlign":       0,
		"vLink":        0,
		"vSpace":       Number,

		// Non-standard.
		"allowTransparency":       0,
		"autoCorrect":             0,
		"autoSave":                0,
		"disablePictureInPicture": Boolean,
		"disableRemotePlayback":   Boolean,
		"prefix":                  0,
		"property":                0,
		"results":                 Number,
		"security":                0,
		"unselectable":            0,
	}),
}
