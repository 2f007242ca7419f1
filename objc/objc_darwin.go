package objc

/*
#cgo LDFLAGS: -lobjc
#include <objc/runtime.h>
#include <objc/message.h>

// Accepts a Class parameter instead of id, so the runtime never treats
// internal classes like __NSGenericDeallocHandler as retainable objects.
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
