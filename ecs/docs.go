/*
	Entity component system
	http://en.wikipedia.org/wiki/Entity_component_system

	The entity is a general purpose object. It only consists of an index into the
	component arrays of the World and a mask of the components it carries.

	The component consists of a minimal set of data needed for a specific purpose.
	Every kind of component has its own fixed size array inside the World.

	The System is a single purpose function that is called once per frame with
	the World. Read-only systems only get a View and cannot change anything.

	The World holds at most MaxEntities entities. It is not safe for concurrent
	use, all systems run on the rendering thread.
*/
package ecs
