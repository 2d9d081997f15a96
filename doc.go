// Copyright 2018 Andrew Fort

/*
Package scanogram loads 3D scan project files.

A project file (conventionally named person.scan.xml) describes a person
and one or more scans recorded of them. Each scan is split into stages,
such as a whole body or a head pass, and each stage lists the sensor
streams it recorded along with the directories their depth, color and
infrared frames were written to. The frames themselves are not read.

	<texel>
	  <person gender="female"><name>Alice</name></person>
	  <scan scanner="portal_mx" date="2020-01-01T12:00:00Z">
	    <stage pass="body">
	      <bounding_box min_x="-1" min_y="0" min_z="-1" max_x="1" max_y="2" max_z="1"/>
	      <stream sensor="azure_kinect" sensor_data="000123">
	        <depth path="frames" width="640" height="576">...</depth>
	      </stream>
	    </stage>
	  </scan>
	</texel>

Loading is strict. An unknown, missing or repeated section or attribute,
or a value which does not convert to its type, rejects the whole file
with an error trace naming each enclosing section, innermost first.

See the loader sub-directory for the entry points, model for the loaded
entities and finder for discovering project files in a directory tree.
*/
package scanogram
