package schema

import "strings"

var svgDef = definition{
	transform: caseSensitiveTransform,
	attributes: withEventAttributes(map[string]string{
		"accentHeight":               "accent-height",
		"alignmentBaseline":          "alignment-baseline",
		"arabicForm":                 "arabic-form",
		"baselineShift":              "baseline-shift",
		"capHeight":                  "cap-height",
		"className":                  "class",
		"clipPath":                   "clip-path",
		"clipRule":                   "clip-rule",
		"colorInterpolation":         "color-interpolation",
		"colorInterpolationFilters":  "color-interpolation-filters",
		"colorProfile":               "color-profile",
		"colorRendering":             "color-rendering",
		"crossOrigin":                "crossorigin",
		"dataType":                   "datatype",
		"dominantBaseline":           "dominant-baseline",
		"enableBackground":           "enable-background",
		"fillOpacity":                "fill-opacity",
		"fillRule":                   "fill-rule",
		"floodColor":                 "flood-color",
		"floodOpacity":               "flood-opacity",
		"fontFamily":                 "font-family",
		"fontSize":                   "font-size",
		"fontSizeAdjust":             "font-size-adjust",
		"fontStretch":                "font-stretch",
		"fontStyle":                  "font-style",
		"fontVariant":                "font-variant",
		"fontWeight":                 "font-weight",
		"glyphName":                  "glyph-name",
		"glyphOrientationHorizontal": "glyph-orientation-horizontal",
		"glyphOrientationVertical":   "glyph-orientation-vertical",
		"hrefLang":                   "hreflang",
		"horizAdvX":                  "horiz-adv-x",
		"horizOriginX":               "horiz-origin-x",
		"horizOriginY":               "horiz-origin-y",
		"imageRendering":             "image-rendering",
		"letterSpacing":              "letter-spacing",
		"lightingColor":              "lighting-color",
		"markerEnd":                  "marker-end",
		"markerMid":                  "marker-mid",
		"markerStart":                "marker-start",
		"navDown":                    "nav-down",
		"navDownLeft":                "nav-down-left",
		"navDownRight":               "nav-down-right",
		"navLeft":                    "nav-left",
		"navNext":                    "nav-next",
		"navPrev":                    "nav-prev",
		"navRight":                   "nav-right",
		"navUp":                      "nav-up",
		"navUpLeft":                  "nav-up-left",
		"navUpRight":                 "nav-up-right",
		"overlinePosition":           "overline-position",
		"overlineThickness":          "overline-thickness",
		"paintOrder":                 "paint-order",
		"panose1":                    "panose-1",
		"playbackOrder":              "playbackorder",
		"pointerEvents":              "pointer-events",
		"referrerPolicy":             "referrerpolicy",
		"renderingIntent":            "rendering-intent",
		"shapeRendering":             "shape-rendering",
		"stopColor":                  "stop-color",
		"stopOpacity":                "stop-opacity",
		"strikethroughPosition":      "strikethrough-position",
		"strikethroughThickness":     "strikethrough-thickness",
		"strokeDashArray":            "stroke-dasharray",
		"strokeDashOffset":           "stroke-dashoffset",
		"strokeLineCap":              "stroke-linecap",
		"strokeLineJoin":             "stroke-linejoin",
		"strokeMiterLimit":           "stroke-miterlimit",
		"strokeOpacity":              "stroke-opacity",
		"strokeWidth":                "stroke-width",
		"tabIndex":                   "tabindex",
		"textAnchor":                 "text-anchor",
		"textDecoration":             "text-decoration",
		"textRendering":              "text-rendering",
		"timelineBegin":              "timelinebegin",
		"transformOrigin":            "transform-origin",
		"typeOf":                     "typeof",
		"underlinePosition":          "underline-position",
		"underlineThickness":         "underline-thickness",
		"unicodeBidi":                "unicode-bidi",
		"unicodeRange":               "unicode-range",
		"unitsPerEm":                 "units-per-em",
		"vAlphabetic":                "v-alphabetic",
		"vHanging":                   "v-hanging",
		"vIdeographic":               "v-ideographic",
		"vMathematical":              "v-mathematical",
		"vectorEffect":               "vector-effect",
		"vertAdvY":                   "vert-adv-y",
		"vertOriginX":                "vert-origin-x",
		"vertOriginY":                "vert-origin-y",
		"wordSpacing":                "word-spacing",
		"writingMode":                "writing-mode",
		"xHeight":                    "x-height",
	}),
	properties: withEventHandlers(map[string]Flag{
		"about":                      CommaOrSpaceSeparated,
		"accentHeight":               Number,
		"accumulate":                 0,
		"additive":                   0,
		"alignmentBaseline":          0,
		"alphabetic":                 Number,
		"amplitude":                  Number,
		"arabicForm":                 0,
		"ascent":                     Number,
		"attributeName":              0,
		"attributeType":              0,
		"azimuth":                    Number,
		"bandwidth":                  0,
		"baselineShift":              0,
		"baseFrequency":              0,
		"baseProfile":                0,
		"bbox":                       0,
		"begin":                      0,
		"bias":                       Number,
		"by":                         0,
		"calcMode":                   0,
		"capHeight":                  Number,
		"className":                  SpaceSeparated,
		"clip":                       0,
		"clipPath":                   0,
		"clipPathUnits":              0,
		"clipRule":                   0,
		"color":                      0,
		"colorInterpolation":         0,
		"colorInterpolationFilters":  0,
		"colorProfile":               0,
		"colorRendering":             0,
		"content":                    0,
		"contentScriptType":          0,
		"contentStyleType":           0,
		"crossOrigin":                0,
		"cursor":                     0,
		"cx":                         0,
		"cy":                         0,
		"d":                          0,
		"dataType":                   0,
		"defaultAction":              0,
		"descent":                    Number,
		"diffuseConstant":            Number,
		"direction":                  0,
		"display":                    0,
		"dur":                        0,
		"divisor":                    Number,
		"dominantBaseline":           0,
		"download":                   Boolean,
		"dx":                         0,
		"dy":                         0,
		"edgeMode":                   0,
		"editable":                   0,
		"elevation":                  Number,
		"enableBackground":           0,
		"end":                        0,
		"event":                      0,
		"exponent":                   Number,
		"externalResourcesRequired":  0,
		"fill":                       0,
		"fillOpacity":                Number,
		"fillRule":                   0,
		"filter":                     0,
		"filterRes":                  0,
		"filterUnits":                0,
		"floodColor":                 0,
		"floodOpacity":               0,
		"focusable":                  0,
		"focusHighlight":             0,
		"fontFamily":                 0,
		"fontSize":                   0,
		"fontSizeAdjust":             0,
		"fontStretch":                0,
		"fontStyle":                  0,
		"fontVariant":                0,
		"fontWeight":                 0,
		"format":                     0,
		"fr":                         0,
		"from":                       0,
		"fx":                         0,
		"fy":                         0,
		"g1":                         CommaSeparated,
		"g2":                         CommaSeparated,
		"glyphName":                  CommaSeparated,
		"glyphOrientationHorizontal": 0,
		"glyphOrientationVertical":   0,
		"glyphRef":                   0,
		"gradientTransform":          0,
		"gradientUnits":              0,
		"handler":                    0,
		"hanging":                    Number,
		"hatchContentUnits":          0,
		"hatchUnits":                 0,
		"height":                     0,
		"href":                       0,
		"hrefLang":                   0,
		"horizAdvX":                  Number,
		"horizOriginX":               Number,
		"horizOriginY":               Number,
		"id":                         0,
		"ideographic":                Number,
		"imageRendering":             0,
		"initialVisibility":          0,
		"in":                         0,
		"in2":                        0,
		"intercept":                  Number,
		"k":                          Number,
		"k1":                         Number,
		"k2":                         Number,
		"k3":                         Number,
		"k4":                         Number,
		"kernelMatrix":               CommaOrSpaceSeparated,
		"kernelUnitLength":           0,
		"keyPoints":                  0,
		"keySplines":                 0,
		"keyTimes":                   0,
		"kerning":                    0,
		"lang":                       0,
		"lengthAdjust":               0,
		"letterSpacing":              0,
		"lightingColor":              0,
		"limitingConeAngle":          Number,
		"local":                      0,
		"markerEnd":                  0,
		"markerMid":                  0,
		"markerStart":                0,
		"markerHeight":               0,
		"markerUnits":                0,
		"markerWidth":                0,
		"mask":                       0,
		"maskContentUnits":           0,
		"maskUnits":                  0,
		"mathematical":               0,
		"max":                        0,
		"media":                      0,
		"mediaCharacterEncoding":     0,
		"mediaContentEncodings":      0,
		"mediaSize":                  Number,
		"mediaTime":                  0,
		"method":                     0,
		"min":                        0,
		"mode":                       0,
		"name":                       0,
		"navDown":                    0,
		"navDownLeft":                0,
		"navDownRight":               0,
		"navLeft":                    0,
		"navNext":                    0,
		"navPrev":                    0,
		"navRight":                   0,
		"navUp":                      0,
		"navUpLeft":                  0,
		"navUpRight":                 0,
		"numOctaves":                 0,
		"observer":                   0,
		"offset":                     0,
		"opacity":                    0,
		"operator":                   0,
		"order":                      0,
		"orient":                     0,
		"orientation":                0,
		"origin":                     0,
		"overflow":                   0,
		"overlay":                    0,
		"overlinePosition":           Number,
		"overlineThickness":          Number,
		"paintOrder":                 0,
		"panose1":                    0,
		"path":                       0,
		"pathLength":                 Number,
		"patternContentUnits":        0,
		"patternTransform":           0,
		"patternUnits":               0,
		"phase":                      0,
		"ping":                       SpaceSeparated,
		"pitch":                      0,
		"playbackOrder":              0,
		"pointerEvents":              0,
		"points":                     0,
		"pointsAtX":                  Number,
		"pointsAtY":                  Number,
		"pointsAtZ":                  Number,
		"preserveAlpha":              0,
		"preserveAspectRatio":        0,
		"primitiveUnits":             0,
		"propagate":                  0,
		"property":                   CommaOrSpaceSeparated,
		"r":                          0,
		"radius":                     0,
		"referrerPolicy":             0,
		"refX":                       0,
		"refY":                       0,
		"rel":                        CommaOrSpaceSeparated,
		"rev":                        CommaOrSpaceSeparated,
		"renderingIntent":            0,
		"repeatCount":                0,
		"repeatDur":                  0,
		"requiredExtensions":         CommaOrSpaceSeparated,
		"requiredFeatures":           CommaOrSpaceSeparated,
		"requiredFonts":              CommaOrSpaceSeparated,
		"requiredFormats":            CommaOrSpaceSeparated,
		"resource":                   0,
		"restart":                    0,
		"result":                     0,
		"rotate":                     0,
		"rx":                         0,
		"ry":                         0,
		"scale":                      0,
		"seed":                       0,
		"shapeRendering":             0,
		"side":                       0,
		"slope":                      0,
		"snapshotTime":               0,
		"specularConstant":           Number,
		"specularExponent":           Number,
		"spreadMethod":               0,
		"spacing":                    0,
		"startOffset":                0,
		"stdDeviation":               0,
		"stemh":                      0,
		"stemv":                      0,
		"stitchTiles":                0,
		"stopColor":                  0,
		"stopOpacity":                0,
		"strikethroughPosition":      Number,
		"strikethroughThickness":     Number,
		"string":                     0,
		"stroke":                     0,
		"strokeDashArray":            CommaOrSpaceSeparated,
		"strokeDashOffset":           0,
		"strokeLineCap":              0,
		"strokeLineJoin":             0,
		"strokeMiterLimit":           Number,
		"strokeOpacity":              Number,
		"strokeWidth":                0,
		"style":                      0,
		"surfaceScale":               Number,
		"syncBehavior":               0,
		"syncBehaviorDefault":        0,
		"syncMaster":                 0,
		"syncTolerance":              0,
		"syncToleranceDefault":       0,
		"systemLanguage":             CommaOrSpaceSeparated,
		"tabIndex":                   Number,
		"tableValues":                0,
		"target":                     0,
		"targetX":                    Number,
		"targetY":                    Number,
		"textAnchor":                 0,
		"textDecoration":             0,
		"textRendering":              0,
		"textLength":                 0,
		"timelineBegin":              0,
		"title":                      0,
		"transformBehavior":          0,
		"type":                       0,
		"typeOf":                     CommaOrSpaceSeparated,
		"to":                         0,
		"transform":                  0,
		"transformOrigin":            0,
		"u1":                         0,
		"u2":                         0,
		"underlinePosition":          Number,
		"underlineThickness":         Number,
		"unicode":                    0,
		"unicodeBidi":                0,
		"unicodeRange":               0,
		"unitsPerEm":                 Number,
		"values":                     0,
		"vAlphabetic":                Number,
		"vMathematical":              Number,
		"vectorEffect":               0,
		"vHanging":                   Number,
		"vIdeographic":               Number,
		"version":                    0,
		"vertAdvY":                   Number,
		"vertOriginX":                Number,
		"vertOriginY":                Number,
		"viewBox":                    0,
		"viewTarget":                 0,
		"visibility":                 0,
		"width":                      0,
		"widths":                     0,
		"wordSpacing":                0,
		"writingMode":                0,
		"x":                          0,
		"x1":                         0,
		"x2":                         0,
		"xChannelSelector":           0,
		"xHeight":                    Number,
		"y":                          0,
		"y1":                         0,
		"y2":                         0,
		"yChannelSelector":           0,
		"z":                          0,
		"zoomAndPan":                 0,
	}),
}

func withEventAttributes(attrs map[string]string) map[string]string {
	for _, name := range eventHandlers {
		attrs[name] = strings.ToLower(name)
	}
	return attrs
}
