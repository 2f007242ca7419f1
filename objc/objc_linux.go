package objc

/*
#cgo LDFLAGS: -Wl,--no-as-needed -lobjc
#define __OBJC2__ 1
#include <objc/runtime.h>
#include <objc/message.h>

// Same Class-typed entry point as on darwin; GNUstep libobjc2 follows the
// Apple runtime convention of resolving metaclasses via object_getClass.
static Class go_class_getMetaClass(Class c) {
	return object_getClass((id)c);
}
*/
import "C"

import "unsafe"

type cClass = C.Class

func objc_getClass(name *C.char) cClass {
	return C.objc_getClass(name)
}

func objc_getMetaClass(name *C.char) cClass {
	return C.objc_getMetaClass(name)
}

func objc_getClassList(buf *cClass, n int) int {
	return int(C.objc_getClassList(buf, C.int(n)))
}

func class_getName(c cClass) *C.char {
	return C.class_getName(c)
}

func class_getSuperclass(c cClass) cClass {
	return C.class_getSuperclass(c)
}

func class_getMetaClass(c cClass) cClass {
	return C.go_class_getMetaClass(c)
}

func object_getClass(c cClass) cClass {
	return C.object_getClass(C.id(unsafe.Pointer(c)))
}

func class_isMetaClass(c cClass) bool {
	return C.class_isMetaClass(c) != 0
}

func class_getInstanceSize(c cClass) uintptr {
	return uintptr(C.class_getInstanceSize(c))
}
